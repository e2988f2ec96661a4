package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DepartmentRepository answers referential-integrity checks against the
// department table. Nothing in the API mutates departments.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository constructs a DepartmentRepository.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Exists reports whether the named department is present.
func (r *DepartmentRepository) Exists(ctx context.Context, q sqlx.ExtContext, name string) (bool, error) {
	var exists int
	if err := sqlx.GetContext(ctx, q, &exists, "SELECT 1 FROM department WHERE department_name = $1 LIMIT 1", name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check department: %w", err)
	}
	return true, nil
}
