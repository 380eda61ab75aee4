// Package errors is the single import infra code uses for error handling:
// matching goes through the standard library and every constructor records a
// stack via pkg/errors so %+v in logs shows where a failure started.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return pkgerrors.New(text)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join keeps both the business failure and the cleanup failure visible to Is.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
