package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aptipro/teacher-api/internal/models"
)

// QuestionRepository manages persistence for MCQ question-bank entries.
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository constructs a QuestionRepository.
func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question record.
func (r *QuestionRepository) Create(ctx context.Context, q sqlx.ExtContext, question *models.Question) error {
	const query = `INSERT INTO mcq (id, question, option_a, option_b, option_c, option_d, correct_option, difficulty, subject)
		VALUES (:id, :question, :option_a, :option_b, :option_c, :option_d, :correct_option, :difficulty, :subject)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, question); err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}
