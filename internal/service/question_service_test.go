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

type mockQuestionRepo struct {
	created []*models.Question
}

func (m *mockQuestionRepo) Create(ctx context.Context, q sqlx.ExtContext, question *models.Question) error {
	cp := *question
	m.created = append(m.created, &cp)
	return nil
}

func validQuestionRequest() CreateQuestionRequest {
	return CreateQuestionRequest{
		ID:            "31",
		Question:      "What does TCP stand for?",
		OptionA:       "Transmission Control Protocol",
		OptionB:       "Transfer Control Protocol",
		OptionC:       "Transport Core Protocol",
		OptionD:       "Telemetry Control Protocol",
		CorrectOption: "A",
		Difficulty:    "Easy",
		Subject:       "Networks",
	}
}

func TestQuestionServiceCreate(t *testing.T) {
	db, mock, cleanup := newServiceDB(t)
	defer cleanup()
	repo := &mockQuestionRepo{}
	svc := NewQuestionService(db, repo, NewValidator(), zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Create(context.Background(), validQuestionRequest()))
	require.Len(t, repo.created, 1)
	assert.Equal(t, 31, repo.created[0].ID)
	assert.Equal(t, "easy", repo.created[0].Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionServiceCreateNonNumericID(t *testing.T) {
	db, _, cleanup := newServiceDB(t)
	defer cleanup()
	repo := &mockQuestionRepo{}
	svc := NewQuestionService(db, repo, NewValidator(), zap.NewNop())

	req := validQuestionRequest()
	req.ID = "thirty-one"
	err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "id must be an integer", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestQuestionServiceCreateMissingFields(t *testing.T) {
	db, _, cleanup := newServiceDB(t)
	defer cleanup()
	svc := NewQuestionService(db, &mockQuestionRepo{}, NewValidator(), zap.NewNop())

	err := svc.Create(context.Background(), CreateQuestionRequest{ID: "31"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "question is required")
	assert.Contains(t, appErr.Message, "optionA is required")
	assert.Contains(t, appErr.Message, "correctOption is required")
}
