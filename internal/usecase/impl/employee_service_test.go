package impl

import (
	"context"
	"testing"

	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/repository"
	mockRepo "hotelhrm/internal/mocks/repository"
	"hotelhrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEmployeeService(txManager repository.TransactionManager) usecase.EmployeeUsecase {
	return NewEmployeeService(EmployeeServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})
}

func employeeInput(salary int64) usecase.EmployeeInput {
	return usecase.EmployeeInput{
		FirstName:   "Michael",
		LastName:    "Johnson",
		Email:       "michael.johnson@hotelhrm.com",
		PhoneNumber: "+1-555-0102",
		Department:  "Management",
		Position:    "Manager",
		HireDate:    date(2021, 3, 10),
		BaseSalary:  decimal.NewFromInt(salary),
	}
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	srv := newTestEmployeeService(newMemoryTx())
	ctx := context.Background()

	created, err := srv.CreateEmployee(ctx, employeeInput(55000))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, entity.EmploymentStatusActive, created.Status)

	found, err := srv.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Michael Johnson", found.FullName())
	decimalEqual(t, "55000", found.BaseSalary)

	list, err := srv.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEmployeeService_CreateRejectsInvalidInput(t *testing.T) {
	srv := newTestEmployeeService(newMemoryTx())
	ctx := context.Background()

	_, err := srv.CreateEmployee(ctx, employeeInput(-1))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSalary))

	input := employeeInput(1000)
	input.Status = "Retired"
	_, err = srv.CreateEmployee(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))

	list, err := srv.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeService_Update(t *testing.T) {
	srv := newTestEmployeeService(newMemoryTx())
	ctx := context.Background()

	created, err := srv.CreateEmployee(ctx, employeeInput(55000))
	require.NoError(t, err)

	input := employeeInput(60000)
	input.Status = entity.EmploymentStatusOnLeave
	updated, err := srv.UpdateEmployee(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	found, err := srv.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	decimalEqual(t, "60000", found.BaseSalary)
	assert.Equal(t, entity.EmploymentStatusOnLeave, found.Status)

	_, err = srv.UpdateEmployee(ctx, 999, input)
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))
}

func TestEmployeeService_Delete(t *testing.T) {
	srv := newTestEmployeeService(newMemoryTx())
	ctx := context.Background()

	created, err := srv.CreateEmployee(ctx, employeeInput(55000))
	require.NoError(t, err)

	require.NoError(t, srv.DeleteEmployee(ctx, created.ID))

	_, err = srv.GetEmployee(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))

	err = srv.DeleteEmployee(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeNotFound))
}

func TestEmployeeService_ListFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := newTestEmployeeService(txManager)
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmployeeRepo := mockRepo.NewMockEmployeeRepository(t)

			mockFactory.EXPECT().EmployeeRepo().Return(mockEmployeeRepo)
			mockEmployeeRepo.EXPECT().List(ctx).Return(nil, errors.New("timeout"))

			return fn(mockFactory)
		})

	employees, err := srv.ListEmployees(ctx)

	require.Error(t, err)
	assert.Nil(t, employees)
	assert.Contains(t, err.Error(), "failed to list employees")
}
