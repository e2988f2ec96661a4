package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aptipro/teacher-api/pkg/database"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
)

// NewValidator returns a validator that resolves field names from json tags
// so failure messages speak the wire vocabulary.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredFieldsError folds every failed field into one message so the
// caller sees the complete missing list at once, not just the first.
func requiredFieldsError(err error) *appErrors.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fe.Field()+" is required")
		}
		return appErrors.Clone(appErrors.ErrValidation, strings.Join(parts, "; "))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}

// parseIntField coerces a numeric field supplied as a string or number.
// Malformed input is the caller's fault, not an internal failure.
func parseIntField(raw, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, field+" must be an integer")
	}
	return n, nil
}

// storeError maps a raw store failure onto the error taxonomy, keeping
// already-typed errors intact and distinguishing an unreachable store from
// an application failure.
func storeError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	if database.IsUnavailable(err) {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "database unavailable")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
