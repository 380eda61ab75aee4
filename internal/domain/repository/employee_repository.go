package repository

import (
	"context"
	"errors"

	"hotelhrm/internal/domain/entity"
)

// ErrEmployeeNotFound is returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*entity.Employee, error)
}
