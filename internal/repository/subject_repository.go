package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubjectRepository reads the subject catalogue. Read-only in this API.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs a SubjectRepository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// NamesByDepartment lists subject names taught in a department.
func (r *SubjectRepository) NamesByDepartment(ctx context.Context, dept string) ([]string, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, "SELECT subject_name FROM subjects WHERE dept_name = $1 ORDER BY subject_name", dept); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return names, nil
}
