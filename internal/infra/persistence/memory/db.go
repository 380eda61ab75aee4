// Package memory contains the in-process implementation of the persistence layer.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
)

// DB is a thread-safe in-process store. Records are cloned on the way in and
// out, so callers never share memory with it.
type DB struct {
	mu sync.RWMutex
	// txMu serialises transactions so a rollback never discards a concurrent commit.
	txMu sync.Mutex

	users     map[int64]*entity.User
	employees map[int64]*entity.Employee
	payrolls  map[int64]*entity.PayrollRecord

	lastUserID     int64
	lastEmployeeID int64
	lastPayrollID  int64
}

// NewDB creates an empty store.
func NewDB() *DB {
	return &DB{
		users:     make(map[int64]*entity.User),
		employees: make(map[int64]*entity.Employee),
		payrolls:  make(map[int64]*entity.PayrollRecord),
	}
}

// snapshot copies the maps. Stored values are never mutated in place, so
// sharing the pointers is safe.
type snapshot struct {
	users     map[int64]*entity.User
	employees map[int64]*entity.Employee
	payrolls  map[int64]*entity.PayrollRecord

	lastUserID     int64
	lastEmployeeID int64
	lastPayrollID  int64
}

func (db *DB) snapshot() snapshot {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return snapshot{
		users:          maps.Clone(db.users),
		employees:      maps.Clone(db.employees),
		payrolls:       maps.Clone(db.payrolls),
		lastUserID:     db.lastUserID,
		lastEmployeeID: db.lastEmployeeID,
		lastPayrollID:  db.lastPayrollID,
	}
}

func (db *DB) restore(s snapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.users = s.users
	db.employees = s.employees
	db.payrolls = s.payrolls
	db.lastUserID = s.lastUserID
	db.lastEmployeeID = s.lastEmployeeID
	db.lastPayrollID = s.lastPayrollID
}

func sortedValues[T any](m map[int64]T, clone func(T) T) []T {
	ids := slices.Collect(maps.Keys(m))
	slices.SortFunc(ids, cmp.Compare[int64])

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(m[id]))
	}

	return out
}

// memoryTransactionManager implements repository.TransactionManager.
type memoryTransactionManager struct {
	db *DB
}

type memoryRepositoryFactory struct {
	db *DB
}

func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}

func (f *memoryRepositoryFactory) EmployeeRepo() repository.EmployeeRepository {
	return NewEmployeeRepository(f.db)
}

func (f *memoryRepositoryFactory) PayrollRepo() repository.PayrollRepository {
	return NewPayrollRepository(f.db)
}

// NewTransactionManager returns a transaction manager over db.
func NewTransactionManager(db *DB) repository.TransactionManager {
	return &memoryTransactionManager{db: db}
}

// Execute runs fn and restores the pre-transaction state if it fails or panics.
func (tm *memoryTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.db.txMu.Lock()
	defer tm.db.txMu.Unlock()

	before := tm.db.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.db.restore(before)
			panic(r)
		}
	}()

	if err := fn(&memoryRepositoryFactory{db: tm.db}); err != nil {
		tm.db.restore(before)

		return err
	}

	return nil
}
