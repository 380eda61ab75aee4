package impl

import (
	"context"
	"log/slog"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/pkg/errors"
)

// guard evaluates a permission against the session bound to the request context.
type guard struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

func (g guard) require(ctx context.Context, permission service.Permission) error {
	state := g.sessions.Current(ctx)
	if permission.Allows(state.Role()) {
		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)
	if !state.IsAuthenticated() {
		logger.Warn("Anonymous caller denied", slog.String("permission", string(permission)))

		return errors.Wrapf(domainerrors.ErrForbidden, "%s requires a signed-in user", permission)
	}
	logger.Warn("Caller denied",
		slog.String("permission", string(permission)),
		slog.String("username", state.Principal.Name),
		slog.String("role", state.Role().String()),
	)

	return errors.Wrapf(domainerrors.ErrForbidden, "role %q lacks %s", state.Role(), permission)
}

// authorizedEmployeeService checks employee-data permission before every mutation.
type authorizedEmployeeService struct {
	next  usecase.EmployeeUsecase
	guard guard
}

// NewAuthorizedEmployeeService wraps next so that create, update and delete
// are refused with ErrForbidden unless the session role may modify employee data.
func NewAuthorizedEmployeeService(next usecase.EmployeeUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) usecase.EmployeeUsecase {
	return &authorizedEmployeeService{
		next:  next,
		guard: guard{sessions: sessions, logger: logger},
	}
}

func (srv *authorizedEmployeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	return srv.next.ListEmployees(ctx)
}

func (srv *authorizedEmployeeService) GetEmployee(ctx context.Context, id int64) (*entity.Employee, error) {
	return srv.next.GetEmployee(ctx, id)
}

func (srv *authorizedEmployeeService) CreateEmployee(ctx context.Context, input usecase.EmployeeInput) (*entity.Employee, error) {
	if err := srv.guard.require(ctx, service.PermissionModifyEmployeeData); err != nil {
		return nil, err
	}

	return srv.next.CreateEmployee(ctx, input)
}

func (srv *authorizedEmployeeService) UpdateEmployee(ctx context.Context, id int64, input usecase.EmployeeInput) (*entity.Employee, error) {
	if err := srv.guard.require(ctx, service.PermissionModifyEmployeeData); err != nil {
		return nil, err
	}

	return srv.next.UpdateEmployee(ctx, id, input)
}

func (srv *authorizedEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := srv.guard.require(ctx, service.PermissionModifyEmployeeData); err != nil {
		return err
	}

	return srv.next.DeleteEmployee(ctx, id)
}

// authorizedPayrollService checks payroll-data permission before every mutation.
type authorizedPayrollService struct {
	next  usecase.PayrollUsecase
	guard guard
}

// NewAuthorizedPayrollService wraps next so that processing and status changes
// are refused with ErrForbidden unless the session role may modify payroll data.
func NewAuthorizedPayrollService(next usecase.PayrollUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) usecase.PayrollUsecase {
	return &authorizedPayrollService{
		next:  next,
		guard: guard{sessions: sessions, logger: logger},
	}
}

func (srv *authorizedPayrollService) ProcessPayroll(ctx context.Context, input usecase.ProcessPayrollInput) (*entity.PayrollRecord, error) {
	if err := srv.guard.require(ctx, service.PermissionModifyPayrollData); err != nil {
		return nil, err
	}

	return srv.next.ProcessPayroll(ctx, input)
}

func (srv *authorizedPayrollService) ListPayrollRecords(ctx context.Context) ([]*entity.PayrollRecord, error) {
	return srv.next.ListPayrollRecords(ctx)
}

func (srv *authorizedPayrollService) GetPayrollRecord(ctx context.Context, id int64) (*entity.PayrollRecord, error) {
	return srv.next.GetPayrollRecord(ctx, id)
}

func (srv *authorizedPayrollService) ListPayrollRecordsByEmployee(ctx context.Context, employeeID int64) ([]*entity.PayrollRecord, error) {
	return srv.next.ListPayrollRecordsByEmployee(ctx, employeeID)
}

func (srv *authorizedPayrollService) UpdatePayrollStatus(ctx context.Context, id int64, status entity.PayrollStatus) (*entity.PayrollRecord, error) {
	if err := srv.guard.require(ctx, service.PermissionModifyPayrollData); err != nil {
		return nil, err
	}

	return srv.next.UpdatePayrollStatus(ctx, id, status)
}
