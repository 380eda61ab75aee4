package usecase

import (
	"context"
	"time"

	"hotelhrm/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// EmployeeInput carries the editable fields of an employee.
type EmployeeInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Department  string
	Position    string
	HireDate    time.Time
	BaseSalary  decimal.Decimal
	Status      entity.EmploymentStatus // Defaults to Active when empty.
}

// EmployeeUsecase defines the operations on staff records.
type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*entity.Employee, error)
	CreateEmployee(ctx context.Context, input EmployeeInput) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, input EmployeeInput) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
