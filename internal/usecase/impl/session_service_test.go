package impl

import (
	"context"
	"errors"
	"testing"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	mockRepo "hotelhrm/internal/mocks/repository"
	mockService "hotelhrm/internal/mocks/service"
	"hotelhrm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockService.MockAuthStatePublisher) {
	publisher := mockService.NewMockAuthStatePublisher(t)
	srv := NewSessionService(SessionServiceParams{
		Publisher: publisher,
		Clock:     newFixedClock(),
		Logger:    newDiscardLogger(),
	})

	return srv, publisher
}

func employeeUser() *entity.User {
	employeeID := int64(1)

	return &entity.User{
		ID:         2,
		Username:   "john.doe",
		Email:      "john.doe@hotelhrm.com",
		Role:       entity.RoleEmployee,
		EmployeeID: &employeeID,
		IsActive:   true,
	}
}

func TestSessionService_Current_WithoutStorageIsAnonymous(t *testing.T) {
	srv, _ := newTestSessionService(t)

	state := srv.Current(context.Background())

	assert.False(t, state.IsAuthenticated())
	assert.Nil(t, state.Principal)
}

func TestSessionService_LoginThenCurrent(t *testing.T) {
	srv, publisher := newTestSessionService(t)
	ctx, storage := sessionContext()
	ctx = deliverycontext.WithRequestID(ctx, "req-1")

	publisher.EXPECT().
		PublishAuthStateEvent(ctx, &entity.AuthStateEvent{
			RequestID:     "req-1",
			Authenticated: true,
			Username:      "john.doe",
			Role:          "Employee",
			OccurredAt:    testNow.UnixMilli(),
		}).
		Return(nil)

	state := srv.Login(ctx, employeeUser())

	require.True(t, state.IsAuthenticated())
	assert.Equal(t, "john.doe", state.Principal.Name)
	assert.Equal(t, "john.doe@hotelhrm.com", state.Principal.Email)
	assert.Equal(t, entity.RoleEmployee, state.Principal.Role)
	assert.Equal(t, int64(1), state.Principal.EmployeeID)

	stored, ok, err := storage.Get(ctx, entity.SessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Employee", stored.Role)

	current := srv.Current(ctx)
	require.True(t, current.IsAuthenticated())
	assert.Equal(t, state.Principal, current.Principal)
}

func TestSessionService_Current_ClaimsWithoutEmployeeID(t *testing.T) {
	srv, _ := newTestSessionService(t)
	ctx, storage := sessionContext()
	require.NoError(t, storage.Set(ctx, entity.SessionKey, &entity.SessionClaims{
		Username: "hr.admin",
		Email:    "hr@hotelhrm.com",
		Role:     "HR",
	}))

	state := srv.Current(ctx)

	require.True(t, state.IsAuthenticated())
	assert.Equal(t, entity.NoEmployeeID, state.Principal.EmployeeID)
	assert.Equal(t, entity.RoleHR, state.Role())
}

func TestSessionService_Current_ReadFailureIsAnonymous(t *testing.T) {
	srv, _ := newTestSessionService(t)
	storage := mockRepo.NewMockSessionStorage(t)
	ctx := deliverycontext.WithSessionStorage(context.Background(), storage)

	storage.EXPECT().Get(ctx, entity.SessionKey).Return(nil, false, errors.New("corrupt cookie"))

	assert.False(t, srv.Current(ctx).IsAuthenticated())
}

func TestSessionService_Login_WriteFailureDegradesToAnonymous(t *testing.T) {
	srv, _ := newTestSessionService(t)
	storage := mockRepo.NewMockSessionStorage(t)
	ctx := deliverycontext.WithSessionStorage(context.Background(), storage)

	storage.EXPECT().
		Set(ctx, entity.SessionKey, mock.AnythingOfType("*entity.SessionClaims")).
		Return(errors.New("storage unavailable"))

	notified := false
	srv.Subscribe(func(context.Context, *entity.AuthState) { notified = true })

	state := srv.Login(ctx, employeeUser())

	assert.False(t, state.IsAuthenticated())
	assert.False(t, notified)
}

func TestSessionService_Login_WithoutStorage(t *testing.T) {
	srv, _ := newTestSessionService(t)

	assert.False(t, srv.Login(context.Background(), employeeUser()).IsAuthenticated())
	assert.False(t, srv.Login(context.Background(), nil).IsAuthenticated())
}

func TestSessionService_Logout(t *testing.T) {
	srv, publisher := newTestSessionService(t)
	ctx, storage := sessionContext()
	require.NoError(t, storage.Set(ctx, entity.SessionKey, entity.ClaimsFromUser(employeeUser())))

	publisher.EXPECT().
		PublishAuthStateEvent(ctx, mock.MatchedBy(func(event *entity.AuthStateEvent) bool {
			return !event.Authenticated && event.Username == ""
		})).
		Return(nil)

	var observed []*entity.AuthState
	srv.Subscribe(func(_ context.Context, state *entity.AuthState) { observed = append(observed, state) })

	state := srv.Logout(ctx)

	assert.False(t, state.IsAuthenticated())
	assert.False(t, srv.Current(ctx).IsAuthenticated())
	require.Len(t, observed, 1)
	assert.False(t, observed[0].IsAuthenticated())
}

func TestSessionService_Logout_DeleteFailure(t *testing.T) {
	srv, _ := newTestSessionService(t)
	storage := mockRepo.NewMockSessionStorage(t)
	ctx := deliverycontext.WithSessionStorage(context.Background(), storage)

	storage.EXPECT().Delete(ctx, entity.SessionKey).Return(errors.New("storage unavailable"))

	notified := false
	srv.Subscribe(func(context.Context, *entity.AuthState) { notified = true })

	assert.False(t, srv.Logout(ctx).IsAuthenticated())
	assert.False(t, notified)
}

func TestSessionService_SubscribeAndUnsubscribe(t *testing.T) {
	srv, publisher := newTestSessionService(t)
	ctx, _ := sessionContext()

	publisher.EXPECT().PublishAuthStateEvent(ctx, mock.Anything).Return(nil).Times(3)

	var first, second []bool
	unsubscribeFirst := srv.Subscribe(func(_ context.Context, state *entity.AuthState) {
		first = append(first, state.IsAuthenticated())
	})
	srv.Subscribe(func(_ context.Context, state *entity.AuthState) {
		second = append(second, state.IsAuthenticated())
	})

	srv.Login(ctx, employeeUser())
	srv.Logout(ctx)

	unsubscribeFirst()
	unsubscribeFirst()

	srv.Login(ctx, employeeUser())

	assert.Equal(t, []bool{true, false}, first)
	assert.Equal(t, []bool{true, false, true}, second)
}

func TestSessionService_PublishFailureKeepsTransition(t *testing.T) {
	srv, publisher := newTestSessionService(t)
	ctx, _ := sessionContext()

	publisher.EXPECT().PublishAuthStateEvent(ctx, mock.Anything).Return(errors.New("bus down"))

	state := srv.Login(ctx, employeeUser())

	assert.True(t, state.IsAuthenticated())
	assert.True(t, srv.Current(ctx).IsAuthenticated())
}

func TestSessionService_SessionsAreIsolated(t *testing.T) {
	srv, publisher := newTestSessionService(t)
	publisher.EXPECT().PublishAuthStateEvent(mock.Anything, mock.Anything).Return(nil)

	browserA, _ := sessionContext()
	browserB, _ := sessionContext()

	srv.Login(browserA, employeeUser())

	assert.True(t, srv.Current(browserA).IsAuthenticated())
	assert.False(t, srv.Current(browserB).IsAuthenticated())
}
