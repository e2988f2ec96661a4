package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	"github.com/aptipro/teacher-api/pkg/database"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
)

type testRepository interface {
	Create(ctx context.Context, q sqlx.ExtContext, test *models.Test) error
}

type teacherChecker interface {
	ExistsByEmail(ctx context.Context, q sqlx.ExtContext, email string) (bool, error)
}

// CreateTestRequest is the test creation payload. Numeric fields arrive as
// strings from the frontend; models.Numeric accepts both encodings.
type CreateTestRequest struct {
	ID             models.Numeric `json:"id" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	Marks          models.Numeric `json:"marks" validate:"required"`
	TotalQuestions models.Numeric `json:"totalQuestions" validate:"required"`
	Duration       models.Numeric `json:"duration" validate:"required"`
	Difficulty     string         `json:"difficulty" validate:"required"`
	Subject        string         `json:"subject" validate:"required"`
	CreatedBy      string         `json:"createdBy" validate:"required"`
	ScheduleDate   string         `json:"scheduleDate" validate:"required"`
	DeptName       string         `json:"dept_name" validate:"required"`
}

// TestService orchestrates test creation.
type TestService struct {
	db        *sqlx.DB
	tests     testRepository
	teachers  teacherChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTestService constructs a TestService.
func NewTestService(db *sqlx.DB, tests testRepository, teachers teacherChecker, validate *validator.Validate, logger *zap.Logger) *TestService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestService{db: db, tests: tests, teachers: teachers, validator: validate, logger: logger}
}

// Create validates the payload, confirms the creating teacher exists and
// inserts the test in one transaction.
func (s *TestService) Create(ctx context.Context, req CreateTestRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return requiredFieldsError(err)
	}

	if !models.ValidDifficulty(req.Difficulty) {
		return appErrors.Clone(appErrors.ErrValidation, "Difficulty must be one of: "+strings.Join(models.Difficulties, ", "))
	}

	id, err := parseIntField(req.ID.String(), "id")
	if err != nil {
		return err
	}
	marks, err := parseIntField(req.Marks.String(), "marks")
	if err != nil {
		return err
	}
	totalQuestions, err := parseIntField(req.TotalQuestions.String(), "totalQuestions")
	if err != nil {
		return err
	}
	duration, err := parseIntField(req.Duration.String(), "duration")
	if err != nil {
		return err
	}

	test := &models.Test{
		ID:            id,
		Name:          req.Name,
		Marks:         marks,
		QuestionCount: totalQuestions,
		Duration:      duration,
		Difficulty:    models.NormalizeDifficulty(req.Difficulty),
		Subject:       req.Subject,
		Teacher:       req.CreatedBy,
		ScheduledAt:   req.ScheduleDate,
		DeptName:      req.DeptName,
	}

	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ok, err := s.teachers.ExistsByEmail(ctx, tx, req.CreatedBy)
		if err != nil {
			return storeError(err, "failed to check teacher")
		}
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		if err := s.tests.Create(ctx, tx, test); err != nil {
			return storeError(err, "failed to create test")
		}
		return nil
	})
	if err != nil {
		return storeError(err, "failed to create test")
	}

	s.logger.Info("test created", zap.Int("id", test.ID), zap.String("teacher", test.Teacher))
	return nil
}
