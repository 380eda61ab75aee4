package repository

import (
	"context"
	"errors"

	"hotelhrm/internal/domain/entity"
)

// ErrPayrollRecordNotFound is returned when a payroll record is not found.
var ErrPayrollRecordNotFound = errors.New("payroll record not found")

// PayrollRepository defines the operations for payroll record persistence.
// Records are never deleted.
type PayrollRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.PayrollRecord, error)

	// FindByEmployeeID returns all records processed for the employee.
	FindByEmployeeID(ctx context.Context, employeeID int64) ([]*entity.PayrollRecord, error)

	// Create persists a new record and assigns its ID.
	Create(ctx context.Context, record *entity.PayrollRecord) error

	// Update overwrites the record with the same ID.
	Update(ctx context.Context, record *entity.PayrollRecord) error

	List(ctx context.Context) ([]*entity.PayrollRecord, error)
}
