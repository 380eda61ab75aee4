// Package persistence selects the storage driver configured for the service.
package persistence

import (
	"log/slog"

	"hotelhrm/config"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/errors"
	"hotelhrm/internal/infra/persistence/memory"
	"hotelhrm/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the stores exposed to the rest of the graph.
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	EmployeeRepo repository.EmployeeRepository
	PayrollRepo  repository.PayrollRepository
}

// New builds the repositories of storage.driver.
func New(params Params) (Repositories, error) {
	driver := config.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		db := memory.NewDB()
		params.Logger.Info("Using in-memory storage")

		return Repositories{
			TxManager:    memory.NewTransactionManager(db),
			UserRepo:     memory.NewUserRepository(db),
			EmployeeRepo: memory.NewEmployeeRepository(db),
			PayrollRepo:  memory.NewPayrollRepository(db),
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			UserRepo:     postgres.NewUserRepository(db),
			EmployeeRepo: postgres.NewEmployeeRepository(db),
			PayrollRepo:  postgres.NewPayrollRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
