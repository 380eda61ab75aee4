package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	monthsPerYear = 12
	daysPerMonth  = 30
	day           = 24 * time.Hour
)

var decimalDaysPerYear = decimal.NewFromInt(monthsPerYear * daysPerMonth)

// payrollService implements the PayrollUsecase interface without access checks.
// Callers outside this package receive it wrapped by NewAuthorizedPayrollService.
type payrollService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// PayrollServiceParams holds dependencies for PayrollService, injected by Fx.
type PayrollServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewPayrollService is the constructor for payrollService.
func NewPayrollService(params PayrollServiceParams) usecase.PayrollUsecase {
	return &payrollService{
		txManager: params.TxManager,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *payrollService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PeriodDays counts the days of a pay period, both ends included.
// A partial final day is truncated.
func PeriodDays(start, end time.Time) int64 {
	return int64(end.Sub(start)/day) + 1
}

// ProratedSalary is the share of an annual salary earned over days,
// on a 12-month year of 30-day months. The product is taken before the single
// division so only one rounding step is applied.
func ProratedSalary(annual decimal.Decimal, days int64) decimal.Decimal {
	return annual.Mul(decimal.NewFromInt(days)).Div(decimalDaysPerYear)
}

// ProcessPayroll computes and stores the pay of one employee for one period.
func (srv *payrollService) ProcessPayroll(ctx context.Context, input usecase.ProcessPayrollInput) (*entity.PayrollRecord, error) {
	if input.PeriodEnd.Before(input.PeriodStart) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPayPeriod, "period end precedes period start")
	}
	if input.Bonus.IsNegative() || input.Deductions.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrInvalidAdjustment, "negative bonus or deductions")
	}

	srv.log(ctx).Info("Processing payroll",
		slog.Int64("employee_id", input.EmployeeID),
		slog.Time("period_start", input.PeriodStart),
		slog.Time("period_end", input.PeriodEnd),
	)

	var record *entity.PayrollRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employee, err := findEmployee(ctx, repoFactory, input.EmployeeID)
		if err != nil {
			return err
		}

		days := PeriodDays(input.PeriodStart, input.PeriodEnd)
		base := ProratedSalary(employee.BaseSalary, days)
		gross := base.Add(input.Bonus)

		record = &entity.PayrollRecord{
			EmployeeID:     employee.ID,
			Employee:       employee.Clone(),
			PayPeriodStart: input.PeriodStart,
			PayPeriodEnd:   input.PeriodEnd,
			BaseSalary:     base,
			Bonus:          input.Bonus,
			Deductions:     input.Deductions,
			GrossPay:       gross,
			NetPay:         gross.Sub(input.Deductions),
			ProcessedAt:    srv.clock.Now(),
			Status:         entity.PayrollStatusProcessed,
		}

		return errors.Wrap(repoFactory.PayrollRepo().Create(ctx, record), "failed to create payroll record")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to process payroll", slog.Int64("employee_id", input.EmployeeID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payroll processed",
		slog.Int64("payroll_id", record.ID),
		slog.Int64("employee_id", record.EmployeeID),
		slog.String("net_pay", record.NetPay.String()),
	)

	return record, nil
}

func (srv *payrollService) ListPayrollRecords(ctx context.Context) ([]*entity.PayrollRecord, error) {
	var records []*entity.PayrollRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PayrollRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list payroll records")
		}
		records = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list payroll records", slog.Any("error", err))

		return nil, err
	}

	return records, nil
}

func (srv *payrollService) GetPayrollRecord(ctx context.Context, id int64) (*entity.PayrollRecord, error) {
	var record *entity.PayrollRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findPayrollRecord(ctx, repoFactory, id)
		if err != nil {
			return err
		}
		record = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (srv *payrollService) ListPayrollRecordsByEmployee(ctx context.Context, employeeID int64) ([]*entity.PayrollRecord, error) {
	var records []*entity.PayrollRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PayrollRepo().FindByEmployeeID(ctx, employeeID)
		if err != nil {
			return errors.Wrap(err, "failed to list payroll records by employee")
		}
		records = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list payroll records by employee", slog.Int64("employee_id", employeeID), slog.Any("error", err))

		return nil, err
	}

	return records, nil
}

// UpdatePayrollStatus moves a record to status, leaving every computed figure untouched.
func (srv *payrollService) UpdatePayrollStatus(ctx context.Context, id int64, status entity.PayrollStatus) (*entity.PayrollRecord, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "payroll status %q", status)
	}

	var record *entity.PayrollRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findPayrollRecord(ctx, repoFactory, id)
		if err != nil {
			return err
		}
		found.Status = status

		if err := repoFactory.PayrollRepo().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update payroll record")
		}
		record = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update payroll status", slog.Int64("payroll_id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payroll status updated", slog.Int64("payroll_id", id), slog.String("status", string(status)))

	return record, nil
}

func findPayrollRecord(ctx context.Context, repoFactory repository.RepositoryFactory, id int64) (*entity.PayrollRecord, error) {
	record, err := repoFactory.PayrollRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPayrollRecordNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrPayrollRecordNotFound, "payroll record %d", id)
		}

		return nil, errors.Wrap(err, "failed to find payroll record")
	}

	return record, nil
}
