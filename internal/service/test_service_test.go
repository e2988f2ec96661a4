package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
)

type mockTestRepo struct {
	created []*models.Test
}

func (m *mockTestRepo) Create(ctx context.Context, q sqlx.ExtContext, test *models.Test) error {
	cp := *test
	m.created = append(m.created, &cp)
	return nil
}

type mockTeacherChecker struct {
	known map[string]bool
}

func (m *mockTeacherChecker) ExistsByEmail(ctx context.Context, q sqlx.ExtContext, email string) (bool, error) {
	return m.known[email], nil
}

func validTestRequest() CreateTestRequest {
	return CreateTestRequest{
		ID:             "7",
		Name:           "Midterm",
		Marks:          "50",
		TotalQuestions: "25",
		Duration:       "60",
		Difficulty:     "MEDIUM",
		Subject:        "Algorithms",
		CreatedBy:      "a@example.com",
		ScheduleDate:   "2025-10-01",
		DeptName:       "CSE",
	}
}

func TestTestServiceCreate(t *testing.T) {
	db, mock, cleanup := newServiceDB(t)
	defer cleanup()
	repo := &mockTestRepo{}
	svc := NewTestService(db, repo, &mockTeacherChecker{known: map[string]bool{"a@example.com": true}}, NewValidator(), zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Create(context.Background(), validTestRequest()))
	require.Len(t, repo.created, 1)

	created := repo.created[0]
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, 25, created.QuestionCount)
	assert.Equal(t, "medium", created.Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestServiceCreateUnknownTeacher(t *testing.T) {
	db, mock, cleanup := newServiceDB(t)
	defer cleanup()
	repo := &mockTestRepo{}
	svc := NewTestService(db, repo, &mockTeacherChecker{}, NewValidator(), zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Create(context.Background(), validTestRequest())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Teacher not found", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestTestServiceCreateInvalidDifficulty(t *testing.T) {
	db, _, cleanup := newServiceDB(t)
	defer cleanup()
	repo := &mockTestRepo{}
	svc := NewTestService(db, repo, &mockTeacherChecker{known: map[string]bool{"a@example.com": true}}, NewValidator(), zap.NewNop())

	req := validTestRequest()
	req.Difficulty = "impossible"
	err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Difficulty must be one of: easy, medium, hard", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestTestServiceCreateNonNumericDuration(t *testing.T) {
	db, _, cleanup := newServiceDB(t)
	defer cleanup()
	svc := NewTestService(db, &mockTestRepo{}, &mockTeacherChecker{known: map[string]bool{"a@example.com": true}}, NewValidator(), zap.NewNop())

	req := validTestRequest()
	req.Duration = "ninety"
	err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "duration must be an integer", appErr.Message)
}

func TestTestServiceCreateMissingFields(t *testing.T) {
	db, _, cleanup := newServiceDB(t)
	defer cleanup()
	svc := NewTestService(db, &mockTestRepo{}, &mockTeacherChecker{}, NewValidator(), zap.NewNop())

	err := svc.Create(context.Background(), CreateTestRequest{Name: "Midterm"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "scheduleDate is required")
	assert.Contains(t, appErr.Message, "dept_name is required")
	assert.Contains(t, appErr.Message, "totalQuestions is required")
}
