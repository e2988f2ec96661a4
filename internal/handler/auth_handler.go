package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aptipro/teacher-api/internal/middleware"
	"github.com/aptipro/teacher-api/internal/models"
	"github.com/aptipro/teacher-api/internal/service"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
	"github.com/aptipro/teacher-api/pkg/response"
)

// AuthHandler wires the account endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Signup godoc
// @Summary Register a teacher account
// @Description Creates an unverified teacher account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
		return
	}

	if err := h.service.Signup(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Teacher account created successfully")
}

// Verify godoc
// @Summary Verify a teacher account
// @Description Marks the account behind the email as verified
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body models.VerifyRequest true "Verify payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verify payload"))
		return
	}

	if err := h.service.Verify(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Account verified successfully", nil)
}

// Login godoc
// @Summary Authenticate a teacher
// @Description Authenticate by email and password, returning the profile and a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Login successful", response.Payload{
		"user":  res.User,
		"token": res.Token,
	})
}

// Me godoc
// @Summary Current teacher identity
// @Description Returns the authenticated teacher's token claims
// @Tags Accounts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	jwtClaims := claims.(*models.JWTClaims)

	response.OK(c, http.StatusOK, "", response.Payload{
		"user": gin.H{
			"id":         jwtClaims.TeacherID,
			"email":      jwtClaims.Email,
			"name":       jwtClaims.Name,
			"department": jwtClaims.Department,
		},
	})
}
