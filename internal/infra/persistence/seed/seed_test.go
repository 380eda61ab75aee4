package seed

import (
	"context"
	"testing"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/infra/auth"
	"hotelhrm/internal/infra/persistence/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeedsReferenceData(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	hasher := auth.NewSHA256Hasher()

	seeded, err := Run(ctx, memory.NewTransactionManager(db), hasher)
	require.NoError(t, err)
	assert.True(t, seeded)

	employees, err := memory.NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "John Doe", employees[0].FullName())
	assert.True(t, employees[0].BaseSalary.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, "Housekeeping Manager", employees[1].Position)
	assert.Equal(t, "Food & Beverage", employees[2].Department)

	users := memory.NewUserRepository(db)
	hr, err := users.FindByUsername(ctx, "hr.admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHR, hr.Role)
	assert.Nil(t, hr.EmployeeID)
	assert.Equal(t, "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=", hr.PasswordHash)

	for i, username := range []string{"john.doe", "jane.smith", "michael.johnson"} {
		user, err := users.FindByUsername(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleEmployee, user.Role)
		require.NotNil(t, user.EmployeeID)
		assert.Equal(t, employees[i].ID, *user.EmployeeID)
		assert.True(t, user.IsActive)
		assert.True(t, hasher.Check(DefaultPassword, user.PasswordHash))
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	txManager := memory.NewTransactionManager(db)

	_, err := Run(ctx, txManager, auth.NewSHA256Hasher())
	require.NoError(t, err)

	seeded, err := Run(ctx, txManager, auth.NewSHA256Hasher())
	require.NoError(t, err)
	assert.False(t, seeded)

	users, err := memory.NewUserRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}
