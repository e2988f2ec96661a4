package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aptipro/teacher-api/internal/service"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
	"github.com/aptipro/teacher-api/pkg/response"
)

// QuestionHandler wires question-bank entry to HTTP.
type QuestionHandler struct {
	service *service.QuestionService
}

// NewQuestionHandler constructs a QuestionHandler.
func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: svc}
}

// Create godoc
// @Summary Create an MCQ
// @Description Adds a multiple-choice question to the bank
// @Tags Questions
// @Accept json
// @Produce json
// @Param payload body service.CreateQuestionRequest true "Question payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req service.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid question payload"))
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	// Question creation answers 200 where the other creators answer 201.
	// The frontend depends on it; left as is.
	response.OK(c, http.StatusOK, "Question created successfully", nil)
}
