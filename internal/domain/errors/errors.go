// Package errors holds the HRM error catalog. Each entry fixes the HTTP status,
// the machine code clients switch on and the message shown to users.
package errors

import (
	"net/http"

	"hotelhrm/internal/errors"
)

// AppError is implemented by every error the API renders with its own code.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is extra client-facing context; empty when there is none.
	Details() string
}

// CatalogError is a catalog entry, optionally carrying request-specific details.
type CatalogError struct {
	status  int
	code    string
	message string
	details string
}

func define(status int, code, message string) *CatalogError {
	return &CatalogError{status: status, code: code, message: message}
}

func (e *CatalogError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

func (e *CatalogError) HTTPCode() int     { return e.status }
func (e *CatalogError) ErrorCode() string { return e.code }
func (e *CatalogError) Message() string   { return e.message }
func (e *CatalogError) Details() string   { return e.details }

// Is matches on code, so a WithDetails copy still equals its catalog entry.
func (e *CatalogError) Is(target error) bool {
	t, ok := target.(*CatalogError)

	return ok && t.code == e.code
}

// WithDetails returns a copy of the entry carrying details.
func (e *CatalogError) WithDetails(details string) *CatalogError {
	c := *e
	c.details = details

	return &c
}

// Session and credential failures.
var (
	ErrInvalidCredentials = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	ErrUnauthenticated    = define(http.StatusUnauthorized, "UNAUTHENTICATED", "Sign in required")
	ErrForbidden          = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrPasswordHashFailed = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
)

// User and employee records.
var (
	ErrUserNotFound      = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists = define(http.StatusConflict, "USER_ALREADY_EXISTS", "Username is already taken")
	ErrEmployeeNotFound  = define(http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found")
	ErrInvalidSalary     = define(http.StatusBadRequest, "INVALID_SALARY", "Base salary must not be negative")
)

// Payroll.
var (
	ErrPayrollRecordNotFound = define(http.StatusNotFound, "PAYROLL_RECORD_NOT_FOUND", "Payroll record not found")
	ErrInvalidPayPeriod      = define(http.StatusBadRequest, "INVALID_PAY_PERIOD", "Pay period end must not be before its start")
	ErrInvalidAdjustment     = define(http.StatusBadRequest, "INVALID_ADJUSTMENT", "Bonus and deductions must not be negative")
	ErrInvalidStatus         = define(http.StatusBadRequest, "INVALID_STATUS", "Unknown status value")
)

// Cross-cutting.
var (
	ErrValidationFailed  = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrNotFound          = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError     = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError reports a failed statement. The driver error stays
// reachable through Unwrap for logging but is never rendered.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError records which storage operation failed.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
