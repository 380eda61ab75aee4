// Package seed loads the reference staff and accounts into empty stores.
package seed

import (
	"context"
	"log/slog"
	"time"

	"hotelhrm/config"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/lifecycle"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password"

type seedAccount struct {
	username string
	email    string
	role     entity.Role
	employee int // index into Employees, -1 for none
}

// Employees returns the reference employees, without IDs.
func Employees() []*entity.Employee {
	return []*entity.Employee{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@hotelhrm.com",
			PhoneNumber: "+1-555-0100",
			Department:  "Front Desk",
			Position:    "Receptionist",
			HireDate:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			BaseSalary:  decimal.NewFromInt(35000),
			Status:      entity.EmploymentStatusActive,
		},
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane.smith@hotelhrm.com",
			PhoneNumber: "+1-555-0101",
			Department:  "Housekeeping",
			Position:    "Housekeeping Manager",
			HireDate:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			BaseSalary:  decimal.NewFromInt(45000),
			Status:      entity.EmploymentStatusActive,
		},
		{
			FirstName:   "Michael",
			LastName:    "Johnson",
			Email:       "michael.johnson@hotelhrm.com",
			PhoneNumber: "+1-555-0102",
			Department:  "Food & Beverage",
			Position:    "Chef",
			HireDate:    time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC),
			BaseSalary:  decimal.NewFromInt(55000),
			Status:      entity.EmploymentStatusActive,
		},
	}
}

var accounts = []seedAccount{
	{username: "hr.admin", email: "hr@hotelhrm.com", role: entity.RoleHR, employee: -1},
	{username: "john.doe", email: "john.doe@hotelhrm.com", role: entity.RoleEmployee, employee: 0},
	{username: "jane.smith", email: "jane.smith@hotelhrm.com", role: entity.RoleEmployee, employee: 1},
	{username: "michael.johnson", email: "michael.johnson@hotelhrm.com", role: entity.RoleEmployee, employee: 2},
}

// Run seeds the stores when they hold no employees and no users.
// It reports whether anything was written.
func Run(ctx context.Context, txManager repository.TransactionManager, hasher service.PasswordHasher) (bool, error) {
	seeded := false

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()
		userRepo := repoFactory.UserRepo()

		existingEmployees, err := employeeRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list employees")
		}
		existingUsers, err := userRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		if len(existingEmployees) > 0 || len(existingUsers) > 0 {
			return nil
		}

		employees := Employees()
		for _, employee := range employees {
			if err := employeeRepo.Create(ctx, employee); err != nil {
				return errors.Wrapf(err, "failed to seed employee %s", employee.FullName())
			}
		}

		for _, account := range accounts {
			digest, err := hasher.Hash(DefaultPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash seed password")
			}

			user := &entity.User{
				Username:     account.username,
				PasswordHash: digest,
				Email:        account.email,
				Role:         account.role,
				IsActive:     true,
			}
			if account.employee >= 0 {
				id := employees[account.employee].ID
				user.EmployeeID = &id
			}

			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to seed user %s", account.username)
			}
		}

		seeded = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// Params defines the dependencies of the startup seeding hook.
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// Register seeds on application start when storage.seed is enabled.
func Register(params Params) {
	if params.Config.Storage == nil || !params.Config.Storage.Seed {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			seeded, err := Run(ctx, params.TxManager, params.Hasher)
			if err != nil {
				return err
			}
			if seeded {
				params.Logger.Info("Seeded reference data",
					slog.Int("employees", len(Employees())),
					slog.Int("users", len(accounts)),
				)
			}

			return nil
		},
	})
}
