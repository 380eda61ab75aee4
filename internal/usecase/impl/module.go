package impl

import (
	"log/slog"

	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"go.uber.org/fx"
)

// GuardedServicesParams holds dependencies for the access-checked use cases.
type GuardedServicesParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Sessions  usecase.SessionUsecase
	Logger    *slog.Logger
}

// GuardedServices exposes only the access-checked employee and payroll use cases.
type GuardedServices struct {
	fx.Out

	Employees usecase.EmployeeUsecase
	Payroll   usecase.PayrollUsecase
}

// NewGuardedServices builds the employee and payroll services behind their authorization decorators.
func NewGuardedServices(params GuardedServicesParams) GuardedServices {
	employees := NewEmployeeService(EmployeeServiceParams{
		TxManager: params.TxManager,
		Logger:    params.Logger,
	})
	payroll := NewPayrollService(PayrollServiceParams{
		TxManager: params.TxManager,
		Clock:     params.Clock,
		Logger:    params.Logger,
	})

	return GuardedServices{
		Employees: NewAuthorizedEmployeeService(employees, params.Sessions, params.Logger),
		Payroll:   NewAuthorizedPayrollService(payroll, params.Sessions, params.Logger),
	}
}

// Module provides the use case implementations.
var Module = fx.Module("usecase",
	fx.Provide(
		NewSessionService,
		NewAuthService,
		NewGuardedServices,
	),
)
