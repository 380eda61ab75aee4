// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var _ echo.Validator = (*CustomValidator)(nil)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate validates a struct based on its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(describe(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

func describe(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		message := fieldErr.Field() + " failed on '" + fieldErr.Tag() + "'"
		if fieldErr.Param() != "" {
			message += " (" + fieldErr.Param() + ")"
		}
		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
