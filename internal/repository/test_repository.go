package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aptipro/teacher-api/internal/models"
)

// TestRepository manages persistence for tests.
type TestRepository struct {
	db *sqlx.DB
}

// NewTestRepository constructs a TestRepository.
func NewTestRepository(db *sqlx.DB) *TestRepository {
	return &TestRepository{db: db}
}

// Create inserts a new test record.
func (r *TestRepository) Create(ctx context.Context, q sqlx.ExtContext, test *models.Test) error {
	const query = `INSERT INTO tests (id, name, marks, questions_count, duration, difficulty, subject, teacher, scheduled_at, dept_name)
		VALUES (:id, :name, :marks, :questions_count, :duration, :difficulty, :subject, :teacher, :scheduled_at, :dept_name)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, test); err != nil {
		return fmt.Errorf("create test: %w", err)
	}
	return nil
}

// CountByTeacher counts tests owned by the given teacher email.
func (r *TestRepository) CountByTeacher(ctx context.Context, email string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tests WHERE teacher = $1", email); err != nil {
		return 0, fmt.Errorf("count tests: %w", err)
	}
	return count, nil
}
