// Package postgres stores HRM users, employees and payroll records in PostgreSQL through GORM.
package postgres

import (
	"context"

	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute delegates to gorm's Transaction, which rolls back when fn returns
// an error or panics and commits otherwise.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil && errors.Is(err, fnErr):
		// Domain errors pass through untouched so callers can match sentinels.
		return err
	default:
		return errors.Wrap(err, "postgres transaction")
	}
}

// txRepos binds every repository to the same *gorm.DB transaction handle.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) UserRepo() repository.UserRepository         { return NewUserRepository(r.tx) }
func (r txRepos) EmployeeRepo() repository.EmployeeRepository { return NewEmployeeRepository(r.tx) }
func (r txRepos) PayrollRepo() repository.PayrollRepository   { return NewPayrollRepository(r.tx) }
