package impl

import (
	"context"
	"log/slog"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// employeeService implements the EmployeeUsecase interface without access checks.
// Callers outside this package receive it wrapped by NewAuthorizedEmployeeService.
type employeeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// EmployeeServiceParams holds dependencies for EmployeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *employeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	var employees []*entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EmployeeRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list employees")
		}
		employees = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list employees", slog.Any("error", err))

		return nil, err
	}

	return employees, nil
}

func (srv *employeeService) GetEmployee(ctx context.Context, id int64) (*entity.Employee, error) {
	var employee *entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findEmployee(ctx, repoFactory, id)
		if err != nil {
			return err
		}
		employee = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

func (srv *employeeService) CreateEmployee(ctx context.Context, input usecase.EmployeeInput) (*entity.Employee, error) {
	employee, err := buildEmployee(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.EmployeeRepo().Create(ctx, employee), "failed to create employee")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create employee", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Employee created", slog.Int64("employee_id", employee.ID))

	return employee, nil
}

func (srv *employeeService) UpdateEmployee(ctx context.Context, id int64, input usecase.EmployeeInput) (*entity.Employee, error) {
	employee, err := buildEmployee(input)
	if err != nil {
		return nil, err
	}
	employee.ID = id

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.EmployeeRepo().Update(ctx, employee)
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee to update not found")
		}

		return errors.Wrap(err, "failed to update employee")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update employee", slog.Int64("employee_id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Employee updated", slog.Int64("employee_id", id))

	return employee, nil
}

func (srv *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.EmployeeRepo().Delete(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete employee")
		}
		if !deleted {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee to delete not found")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete employee", slog.Int64("employee_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Employee deleted", slog.Int64("employee_id", id))

	return nil
}

func findEmployee(ctx context.Context, repoFactory repository.RepositoryFactory, id int64) (*entity.Employee, error) {
	employee, err := repoFactory.EmployeeRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrEmployeeNotFound, "employee %d", id)
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return employee, nil
}

func buildEmployee(input usecase.EmployeeInput) (*entity.Employee, error) {
	if input.BaseSalary.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrInvalidSalary, "base salary is negative")
	}

	status := input.Status
	if status == "" {
		status = entity.EmploymentStatusActive
	}
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "employment status %q", status)
	}

	return &entity.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Department:  input.Department,
		Position:    input.Position,
		HireDate:    input.HireDate,
		BaseSalary:  input.BaseSalary,
		Status:      status,
	}, nil
}
