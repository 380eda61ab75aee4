package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployee(first string) *entity.Employee {
	return &entity.Employee{
		FirstName:  first,
		LastName:   "Doe",
		Email:      first + ".doe@hotelhrm.com",
		Department: "Front Desk",
		Position:   "Receptionist",
		HireDate:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.NewFromInt(35000),
		Status:     entity.EmploymentStatusActive,
	}
}

func TestUserRepository_CaseInsensitiveLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewDB())

	user := &entity.User{Username: "hr.admin", Role: entity.RoleHR, IsActive: true}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	found, err := repo.FindByUsername(ctx, "HR.Admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Create(ctx, &entity.User{Username: "HR.ADMIN"})
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepository_UpdateDeleteList(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewDB())

	first := &entity.User{Username: "a"}
	second := &entity.User{Username: "b"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	second.Username = "A"
	assert.ErrorIs(t, repo.Update(ctx, second), repository.ErrUsernameTaken)

	second.Username = "c"
	second.IsActive = true
	require.NoError(t, repo.Update(ctx, second))
	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: 99}), repository.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "c", users[1].Username)

	deleted, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestEmployeeRepository_CopiesInAndOut(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewDB())

	employee := newEmployee("John")
	require.NoError(t, repo.Create(ctx, employee))

	employee.FirstName = "Mutated"
	stored, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", stored.FirstName)

	stored.LastName = "Mutated"
	again, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doe", again.LastName)
}

func TestEmployeeRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewDB())

	employee := newEmployee("John")
	require.NoError(t, repo.Create(ctx, employee))

	employee.Position = "Front Desk Manager"
	require.NoError(t, repo.Update(ctx, employee))
	assert.ErrorIs(t, repo.Update(ctx, &entity.Employee{ID: 42}), repository.ErrEmployeeNotFound)

	stored, err := repo.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Front Desk Manager", stored.Position)

	deleted, err := repo.Delete(ctx, employee.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, employee.ID)
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestPayrollRepository_SnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewPayrollRepository(NewDB())

	employee := newEmployee("John")
	employee.ID = 1
	record := &entity.PayrollRecord{EmployeeID: 1, Employee: employee, Status: entity.PayrollStatusProcessed}
	require.NoError(t, repo.Create(ctx, record))
	require.NoError(t, repo.Create(ctx, &entity.PayrollRecord{EmployeeID: 2}))
	require.NoError(t, repo.Create(ctx, &entity.PayrollRecord{EmployeeID: 1}))

	employee.BaseSalary = decimal.NewFromInt(1)
	stored, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, stored.Employee.BaseSalary.Equal(decimal.NewFromInt(35000)))

	forEmployee, err := repo.FindByEmployeeID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, forEmployee, 2)
	assert.Equal(t, int64(1), forEmployee[0].ID)
	assert.Equal(t, int64(3), forEmployee[1].ID)

	none, err := repo.FindByEmployeeID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, none)

	stored.Status = entity.PayrollStatusPaid
	require.NoError(t, repo.Update(ctx, stored))
	assert.ErrorIs(t, repo.Update(ctx, &entity.PayrollRecord{ID: 9}), repository.ErrPayrollRecordNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.PayrollStatusPaid, all[0].Status)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		require.NoError(t, factory.EmployeeRepo().Create(ctx, newEmployee("John")))
		require.NoError(t, factory.UserRepo().Create(ctx, &entity.User{Username: "john.doe"}))

		return boom
	})
	require.ErrorIs(t, err, boom)

	employees, err := NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	// IDs are not consumed by rolled back work.
	employee := newEmployee("Jane")
	require.NoError(t, NewEmployeeRepository(db).Create(ctx, employee))
	assert.Equal(t, int64(1), employee.ID)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	txManager := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.EmployeeRepo().Create(ctx, newEmployee("John"))
			panic("boom")
		})
	})

	employees, err := NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestTransactionManager_CommitsAndHonoursCancellation(t *testing.T) {
	db := NewDB()
	txManager := NewTransactionManager(db)

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.PayrollRepo().Create(context.Background(), &entity.PayrollRecord{EmployeeID: 1})
	})
	require.NoError(t, err)

	records, err := NewPayrollRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = txManager.Execute(ctx, func(repository.RepositoryFactory) error {
		t.Fatal("must not run")

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmployeeRepository_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewDB())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, newEmployee("John")))
		}()
	}
	wg.Wait()

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 50)
	for i, employee := range employees {
		assert.Equal(t, int64(i+1), employee.ID)
	}
}
