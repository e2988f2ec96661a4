package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	"github.com/aptipro/teacher-api/internal/service"
)

type resultFeedStub struct {
	records []models.ResultRecord
}

func (s *resultFeedStub) ListByTeacher(ctx context.Context, email string) ([]models.ResultRecord, error) {
	if s.records == nil {
		return []models.ResultRecord{}, nil
	}
	return s.records, nil
}

func newResultHandlerFixture(feed *resultFeedStub) *ResultHandler {
	svc := service.NewResultService(feed, nil, service.NewMetricsService(), service.ResultConfig{}, zap.NewNop(), nil, nil)
	return NewResultHandler(svc)
}

func TestResultHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newResultHandlerFixture(&resultFeedStub{records: []models.ResultRecord{
		{
			ID:           1,
			TestID:       7,
			TestName:     "Midterm",
			TeacherEmail: "a@example.com",
			StudentEmail: "s@example.com",
			StudentName:  "Student S",
			Score:        42,
			TotalMarks:   50,
			SubmittedAt:  time.Date(2025, 9, 12, 10, 30, 0, 0, time.UTC),
		},
	}})

	c, w := newGinContext(http.MethodGet, "/results?email=a@example.com", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	results, ok := body["results"].([]interface{})
	require.True(t, ok)
	require.Len(t, results, 1)

	first := results[0].(map[string]interface{})
	assert.Equal(t, "Student S", first["student_name"])
	assert.Equal(t, float64(42), first["score"])
}

func TestResultHandlerListEmptyFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newResultHandlerFixture(&resultFeedStub{})

	c, w := newGinContext(http.MethodGet, "/results?email=quiet@example.com", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	results, ok := decodeBody(t, w)["results"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, results)
}

func TestResultHandlerListMissingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newResultHandlerFixture(&resultFeedStub{})

	c, w := newGinContext(http.MethodGet, "/results", nil)

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Teacher email is required", decodeBody(t, w)["message"])
}

func TestResultHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newResultHandlerFixture(&resultFeedStub{records: []models.ResultRecord{
		{StudentName: "Student S", StudentEmail: "s@example.com", TestName: "Midterm", Score: 42, TotalMarks: 50, SubmittedAt: time.Now()},
	}})

	c, w := newGinContext(http.MethodGet, "/results/export?email=a@example.com&format=csv", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Student S")
}

func TestResultHandlerExportUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newResultHandlerFixture(&resultFeedStub{})

	c, w := newGinContext(http.MethodGet, "/results/export?email=a@example.com&format=xlsx", nil)

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "format must be csv or pdf", decodeBody(t, w)["message"])
}
