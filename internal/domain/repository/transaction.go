package repository

import "context"

// TransactionManager runs HRM work against one consistent view of storage.
// A non-nil error from fn discards every write fn made.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share the enclosing transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	EmployeeRepo() EmployeeRepository
	PayrollRepo() PayrollRepository
}
