package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	"github.com/aptipro/teacher-api/pkg/database"
)

type questionRepository interface {
	Create(ctx context.Context, q sqlx.ExtContext, question *models.Question) error
}

// CreateQuestionRequest is the question-bank entry payload.
type CreateQuestionRequest struct {
	ID            models.Numeric `json:"id" validate:"required"`
	Question      string         `json:"question" validate:"required"`
	OptionA       string         `json:"optionA" validate:"required"`
	OptionB       string         `json:"optionB" validate:"required"`
	OptionC       string         `json:"optionC" validate:"required"`
	OptionD       string         `json:"optionD" validate:"required"`
	CorrectOption string         `json:"correctOption" validate:"required"`
	Difficulty    string         `json:"difficulty" validate:"required"`
	Subject       string         `json:"subject" validate:"required"`
}

// QuestionService orchestrates MCQ creation.
type QuestionService struct {
	db        *sqlx.DB
	questions questionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(db *sqlx.DB, questions questionRepository, validate *validator.Validate, logger *zap.Logger) *QuestionService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{db: db, questions: questions, validator: validate, logger: logger}
}

// Create validates the payload and inserts the question. Duplicate ids fail
// on the primary key; there is no softer dedup.
func (s *QuestionService) Create(ctx context.Context, req CreateQuestionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return requiredFieldsError(err)
	}

	id, err := parseIntField(req.ID.String(), "id")
	if err != nil {
		return err
	}

	question := &models.Question{
		ID:            id,
		Question:      req.Question,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		Difficulty:    models.NormalizeDifficulty(req.Difficulty),
		Subject:       req.Subject,
	}

	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.questions.Create(ctx, tx, question); err != nil {
			return storeError(err, "failed to create question")
		}
		return nil
	})
	if err != nil {
		return storeError(err, "failed to create question")
	}

	s.logger.Info("question created", zap.Int("id", question.ID), zap.String("subject", question.Subject))
	return nil
}
