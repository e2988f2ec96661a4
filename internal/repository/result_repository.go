package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aptipro/teacher-api/internal/models"
)

// ResultRepository reads the result feed. Results are written by the student
// platform; this API only aggregates them.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// ListByTeacher returns results joined with their students, filtered by the
// owning teacher's email. No match yields an empty slice, not an error.
func (r *ResultRepository) ListByTeacher(ctx context.Context, email string) ([]models.ResultRecord, error) {
	const query = `SELECT results.id, results.test_id, results.test_name, results.teacher_email,
			results.student_email, students.name AS student_name, results.score,
			results.total_marks, results.submitted_at
		FROM results
		JOIN students ON results.student_email = students.email
		WHERE results.teacher_email = $1
		ORDER BY results.submitted_at DESC`
	records := []models.ResultRecord{}
	if err := r.db.SelectContext(ctx, &records, query, email); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return records, nil
}

// CountByTeacher counts results recorded against the teacher's tests.
func (r *ResultRepository) CountByTeacher(ctx context.Context, email string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM results WHERE teacher_email = $1", email); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}
