package usecase

import (
	"context"
	"time"

	"hotelhrm/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProcessPayrollInput defines the data required to process pay for one period.
type ProcessPayrollInput struct {
	EmployeeID  int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Bonus       decimal.Decimal
	Deductions  decimal.Decimal
}

// PayrollUsecase defines payroll processing and record queries.
type PayrollUsecase interface {
	ProcessPayroll(ctx context.Context, input ProcessPayrollInput) (*entity.PayrollRecord, error)
	ListPayrollRecords(ctx context.Context) ([]*entity.PayrollRecord, error)
	GetPayrollRecord(ctx context.Context, id int64) (*entity.PayrollRecord, error)
	ListPayrollRecordsByEmployee(ctx context.Context, employeeID int64) ([]*entity.PayrollRecord, error)
	UpdatePayrollStatus(ctx context.Context, id int64, status entity.PayrollStatus) (*entity.PayrollRecord, error)
}
