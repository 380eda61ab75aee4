package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	usecase.SessionUsecase
	state *entity.AuthState
	reads int
}

func (s *stubSessions) Current(context.Context) *entity.AuthState {
	s.reads++

	return s.state
}

func signedIn(role entity.Role) *entity.AuthState {
	return entity.Authenticated(&entity.SessionClaims{Username: "alice", Role: role.String()})
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuthenticated(t *testing.T) {
	t.Run("anonymous is rejected", func(t *testing.T) {
		m := NewAuthMiddleware(&stubSessions{state: entity.Anonymous()}, newDiscardLogger())
		c, _ := newContext()

		err := m.RequireAuthenticated(okHandler)(c)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		assert.False(t, c.Response().Committed)
	})

	t.Run("signed in passes and stores state", func(t *testing.T) {
		state := signedIn(entity.RoleEmployee)
		m := NewAuthMiddleware(&stubSessions{state: state}, newDiscardLogger())
		c, rec := newContext()

		err := m.RequireAuthenticated(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		got, ok := GetAuthState(c)
		require.True(t, ok)
		assert.Same(t, state, got)
		assert.Equal(t, "alice", deliverycontext.GetUsername(c.Request().Context()))
	})
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		permission service.Permission
		state      *entity.AuthState
		wantErr    error
	}{
		{
			name:       "hr modifies employees",
			permission: service.PermissionModifyEmployeeData,
			state:      signedIn(entity.RoleHR),
		},
		{
			name:       "admin modifies payroll",
			permission: service.PermissionModifyPayrollData,
			state:      signedIn(entity.RoleAdmin),
		},
		{
			name:       "employee cannot modify employees",
			permission: service.PermissionModifyEmployeeData,
			state:      signedIn(entity.RoleEmployee),
			wantErr:    domainerrors.ErrForbidden,
		},
		{
			name:       "employee cannot modify payroll",
			permission: service.PermissionModifyPayrollData,
			state:      signedIn(entity.RoleEmployee),
			wantErr:    domainerrors.ErrForbidden,
		},
		{
			name:       "anonymous cannot modify payroll",
			permission: service.PermissionModifyPayrollData,
			state:      entity.Anonymous(),
			wantErr:    domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(&stubSessions{state: tt.state}, newDiscardLogger())
			c, rec := newContext()

			err := m.RequirePermission(tt.permission)(okHandler)(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRequirePermissionReusesStoredState(t *testing.T) {
	sessions := &stubSessions{state: signedIn(entity.RoleHR)}
	m := NewAuthMiddleware(sessions, newDiscardLogger())
	c, _ := newContext()

	chain := m.RequireAuthenticated(m.RequirePermission(service.PermissionModifyEmployeeData)(okHandler))

	require.NoError(t, chain(c))
	assert.Equal(t, 1, sessions.reads)
}
