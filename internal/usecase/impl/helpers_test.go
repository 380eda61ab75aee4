package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/infra/persistence/memory"
	"hotelhrm/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)

func newFixedClock() fixedClock {
	return fixedClock{now: testNow}
}

// mapStorage is a SessionStorage kept in a plain map.
type mapStorage struct {
	mu     sync.Mutex
	claims map[string]*entity.SessionClaims
}

func newMapStorage() *mapStorage {
	return &mapStorage{claims: make(map[string]*entity.SessionClaims)}
}

func (s *mapStorage) Get(_ context.Context, key string) (*entity.SessionClaims, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, ok := s.claims[key]
	if !ok {
		return nil, false, nil
	}
	clone := *claims

	return &clone, true, nil
}

func (s *mapStorage) Set(_ context.Context, key string, claims *entity.SessionClaims) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *claims
	s.claims[key] = &clone

	return nil
}

func (s *mapStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claims, key)

	return nil
}

// sessionContext returns a context bound to a fresh browser session.
func sessionContext() (context.Context, *mapStorage) {
	storage := newMapStorage()

	return deliverycontext.WithSessionStorage(context.Background(), storage), storage
}

// staticSessions reports a fixed state from Current.
type staticSessions struct {
	usecase.SessionUsecase
	state *entity.AuthState
}

func (s staticSessions) Current(context.Context) *entity.AuthState {
	return s.state
}

func sessionsAs(role entity.Role) staticSessions {
	if role == "" {
		return staticSessions{state: entity.Anonymous()}
	}

	return staticSessions{state: entity.Authenticated(&entity.SessionClaims{
		Username: "tester",
		Email:    "tester@hotelhrm.com",
		Role:     role.String(),
	})}
}

func newMemoryTx() repository.TransactionManager {
	return memory.NewTransactionManager(memory.NewDB())
}

func createEmployee(t *testing.T, txManager repository.TransactionManager, first string, salary int64) *entity.Employee {
	t.Helper()

	employee := &entity.Employee{
		FirstName:  first,
		LastName:   "Doe",
		Email:      first + "@hotelhrm.com",
		Department: "Front Desk",
		Position:   "Receptionist",
		HireDate:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.NewFromInt(salary),
		Status:     entity.EmploymentStatusActive,
	}
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EmployeeRepo().Create(context.Background(), employee)
	})
	require.NoError(t, err)

	return employee
}

func createUser(t *testing.T, txManager repository.TransactionManager, user *entity.User) *entity.User {
	t.Helper()

	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(context.Background(), user)
	})
	require.NoError(t, err)

	return user
}

func decimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
