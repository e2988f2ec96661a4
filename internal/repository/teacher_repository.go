package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aptipro/teacher-api/internal/models"
)

// TeacherRepository manages persistence for teacher accounts. Methods that
// participate in a mutation group accept the executing connection (pool or
// transaction) explicitly; plain reads run on the pool.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

const teacherColumns = "id, email, name, dept_name, password, verified"

// FindByEmail fetches a teacher account including its stored password.
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers WHERE email = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, email); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByEmailOrID checks both unique keys in a single query so near-
// simultaneous signups cannot slip between separate lookups. Returns
// sql.ErrNoRows when both keys are free.
func (r *TeacherRepository) FindByEmailOrID(ctx context.Context, q sqlx.ExtContext, email string, id int) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers WHERE email = $1 OR id = $2 LIMIT 1", teacherColumns)
	var teacher models.Teacher
	if err := sqlx.GetContext(ctx, q, &teacher, query, email, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByEmail reports whether a teacher with the given email exists.
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, q sqlx.ExtContext, email string) (bool, error) {
	var exists int
	if err := sqlx.GetContext(ctx, q, &exists, "SELECT 1 FROM teachers WHERE email = $1 LIMIT 1", email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher email: %w", err)
	}
	return true, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, q sqlx.ExtContext, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (id, email, name, dept_name, password, verified)
		VALUES (:id, :email, :name, :dept_name, :password, :verified)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// SetVerified flips the verified flag. Returns sql.ErrNoRows when no account
// matches the email.
func (r *TeacherRepository) SetVerified(ctx context.Context, q sqlx.ExtContext, email string) error {
	res, err := q.ExecContext(ctx, "UPDATE teachers SET verified = TRUE WHERE email = $1", email)
	if err != nil {
		return fmt.Errorf("verify teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verify teacher: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
