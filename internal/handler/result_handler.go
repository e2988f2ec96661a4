package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aptipro/teacher-api/internal/service"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
	"github.com/aptipro/teacher-api/pkg/response"
)

// ResultHandler wires the result feed to HTTP.
type ResultHandler struct {
	service *service.ResultService
}

// NewResultHandler constructs a ResultHandler.
func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

// List godoc
// @Summary List results for a teacher
// @Description Returns results joined with students for the teacher email
// @Tags Results
// @Produce json
// @Param email query string true "Teacher email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Teacher email is required"))
		return
	}

	records, err := h.service.List(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", response.Payload{"results": records})
}

// Export godoc
// @Summary Export results for a teacher
// @Description Streams the result feed as a CSV or PDF attachment
// @Tags Results
// @Produce octet-stream
// @Param email query string true "Teacher email"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Router /results/export [get]
func (h *ResultHandler) Export(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Teacher email is required"))
		return
	}

	res, err := h.service.Export(c.Request.Context(), email, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, res.ContentType, res.Bytes)
}
