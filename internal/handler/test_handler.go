package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aptipro/teacher-api/internal/service"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
	"github.com/aptipro/teacher-api/pkg/response"
)

// TestHandler wires test creation to HTTP.
type TestHandler struct {
	service *service.TestService
}

// NewTestHandler constructs a TestHandler.
func NewTestHandler(svc *service.TestService) *TestHandler {
	return &TestHandler{service: svc}
}

// Create godoc
// @Summary Create a test
// @Description Creates a scheduled test owned by the creating teacher
// @Tags Tests
// @Accept json
// @Produce json
// @Param payload body service.CreateTestRequest true "Test payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /create_test [post]
func (h *TestHandler) Create(c *gin.Context) {
	var req service.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid test payload"))
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Test created successfully")
}
