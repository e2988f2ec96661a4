package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	"github.com/aptipro/teacher-api/pkg/cipher"
	"github.com/aptipro/teacher-api/pkg/database"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
)

type teacherAccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
	FindByEmailOrID(ctx context.Context, q sqlx.ExtContext, email string, id int) (*models.Teacher, error)
	Create(ctx context.Context, q sqlx.ExtContext, teacher *models.Teacher) error
	SetVerified(ctx context.Context, q sqlx.ExtContext, email string) error
}

type departmentRepository interface {
	Exists(ctx context.Context, q sqlx.ExtContext, name string) (bool, error)
}

type subjectCatalogue interface {
	NamesByDepartment(ctx context.Context, dept string) ([]string, error)
}

type testCounter interface {
	CountByTeacher(ctx context.Context, email string) (int, error)
}

type resultCounter interface {
	CountByTeacher(ctx context.Context, email string) (int, error)
}

// AuthConfig defines token issuance settings.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService provides the signup, verify and login use cases.
type AuthService struct {
	db          *sqlx.DB
	teachers    teacherAccountRepository
	departments departmentRepository
	subjects    subjectCatalogue
	tests       testCounter
	results     resultCounter
	cipher      *cipher.Cipher
	validator   *validator.Validate
	logger      *zap.Logger
	config      AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(db *sqlx.DB, teachers teacherAccountRepository, departments departmentRepository, subjects subjectCatalogue, tests testCounter, results resultCounter, c *cipher.Cipher, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &AuthService{
		db:          db,
		teachers:    teachers,
		departments: departments,
		subjects:    subjects,
		tests:       tests,
		results:     results,
		cipher:      c,
		validator:   validate,
		logger:      logger,
		config:      config,
	}
}

// Signup registers a new, unverified teacher account. The duplicate and
// department checks and the insert run in one transaction; the unique
// constraints close the remaining concurrent window.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return requiredFieldsError(err)
	}
	id, err := parseIntField(req.ID.String(), "id")
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(req.Password)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encrypt password")
	}

	teacher := &models.Teacher{
		ID:       id,
		Email:    req.Email,
		Name:     req.Name,
		DeptName: req.Department,
		Password: encrypted,
		Verified: false,
	}

	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		existing, err := s.teachers.FindByEmailOrID(ctx, tx, req.Email, id)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return storeError(err, "failed to check existing accounts")
		}
		if err == nil {
			if existing.Email == req.Email {
				return appErrors.Clone(appErrors.ErrDuplicate, "Email already exists")
			}
			return appErrors.Clone(appErrors.ErrDuplicate, "ID already exists")
		}

		ok, err := s.departments.Exists(ctx, tx, req.Department)
		if err != nil {
			return storeError(err, "failed to check department")
		}
		if !ok {
			return appErrors.Clone(appErrors.ErrValidation, "Invalid department")
		}

		if err := s.teachers.Create(ctx, tx, teacher); err != nil {
			return storeError(err, "failed to create account")
		}
		return nil
	})
	if err != nil {
		return storeError(err, "failed to create account")
	}

	s.logger.Info("teacher signed up", zap.String("email", teacher.Email))
	return nil
}

// Verify marks the account behind the email as verified.
func (s *AuthService) Verify(ctx context.Context, req models.VerifyRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return requiredFieldsError(err)
	}

	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.teachers.SetVerified(ctx, tx, req.Email); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "Email not found")
			}
			return storeError(err, "failed to verify account")
		}
		return nil
	})
	if err != nil {
		return storeError(err, "failed to verify account")
	}

	s.logger.Info("teacher verified", zap.String("email", req.Email))
	return nil
}

// Login authenticates a teacher and assembles the dashboard profile. An
// unknown email and a wrong password produce the identical failure so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, requiredFieldsError(err)
	}

	teacher, err := s.teachers.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, storeError(err, "failed to load account")
	}

	stored, err := s.cipher.Decrypt(teacher.Password)
	if err != nil {
		// Undecryptable ciphertext (key rotation, corrupted row) must look
		// exactly like a wrong password to the caller.
		s.logger.Warn("stored password decrypt failed", zap.String("email", req.Email), zap.Error(err))
		return nil, appErrors.ErrInvalidCredentials
	}
	if stored != req.Password {
		return nil, appErrors.ErrInvalidCredentials
	}

	if !teacher.Verified {
		return nil, appErrors.ErrUnverified
	}

	subjects, err := s.subjects.NamesByDepartment(ctx, teacher.DeptName)
	if err != nil {
		return nil, storeError(err, "failed to load subjects")
	}
	if subjects == nil {
		subjects = []string{}
	}

	testsCreated, err := s.tests.CountByTeacher(ctx, teacher.Email)
	if err != nil {
		return nil, storeError(err, "failed to count tests")
	}
	resultsAnalyzed, err := s.results.CountByTeacher(ctx, teacher.Email)
	if err != nil {
		return nil, storeError(err, "failed to count results")
	}

	token, err := s.generateAccessToken(teacher)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &models.LoginResponse{
		User: &models.TeacherProfile{
			ID:              teacher.ID,
			Email:           teacher.Email,
			Name:            teacher.Name,
			Department:      teacher.DeptName,
			Verified:        teacher.Verified,
			Subjects:        subjects,
			TestsCreated:    testsCreated,
			ResultsAnalyzed: resultsAnalyzed,
		},
		Token: token,
	}, nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(teacher *models.Teacher) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		TeacherID:  teacher.ID,
		Email:      teacher.Email,
		Name:       teacher.Name,
		Department: teacher.DeptName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   teacher.Email,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.TokenSecret))
}
