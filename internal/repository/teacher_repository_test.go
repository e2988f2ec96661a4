package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptipro/teacher-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTeacherRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "dept_name", "password", "verified"}).
		AddRow(101, "a@example.com", "Teacher A", "CSE", []byte("sealed"), true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, dept_name, password, verified FROM teachers WHERE email = $1")).
		WithArgs("a@example.com").
		WillReturnRows(rows)

	teacher, err := repo.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 101, teacher.ID)
	assert.Equal(t, "CSE", teacher.DeptName)
	assert.True(t, teacher.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryFindByEmailOrID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "dept_name", "password", "verified"}).
		AddRow(101, "a@example.com", "Teacher A", "CSE", []byte("sealed"), false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, dept_name, password, verified FROM teachers WHERE email = $1 OR id = $2 LIMIT 1")).
		WithArgs("b@example.com", 101).
		WillReturnRows(rows)

	teacher, err := repo.FindByEmailOrID(context.Background(), db, "b@example.com", 101)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", teacher.Email)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, dept_name, password, verified FROM teachers WHERE email = $1 OR id = $2 LIMIT 1")).
		WithArgs("free@example.com", 999).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByEmailOrID(context.Background(), db, "free@example.com", 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE email = $1 LIMIT 1")).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), db, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE email = $1 LIMIT 1")).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByEmail(context.Background(), db, "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("INSERT INTO teachers").
		WithArgs(101, "a@example.com", "Teacher A", "CSE", []byte("sealed"), false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), db, &models.Teacher{
		ID:       101,
		Email:    "a@example.com",
		Name:     "Teacher A",
		DeptName: "CSE",
		Password: []byte("sealed"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositorySetVerified(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE teachers SET verified = TRUE WHERE email = $1")).
		WithArgs("a@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetVerified(context.Background(), db, "a@example.com"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE teachers SET verified = TRUE WHERE email = $1")).
		WithArgs("missing@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetVerified(context.Background(), db, "missing@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
