package middleware

import (
	"log/slog"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const authStateKey = "auth_state"

// AuthMiddleware guards routes by the state of the browser session.
// It must run after the session middleware has bound the session storage.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// RequireAuthenticated rejects anonymous sessions with 401. For signed-in
// sessions the username is added to the request context and its logger.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := m.sessions.Current(c.Request().Context())
		if !state.IsAuthenticated() {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "anonymous session")
		}
		c.Set(authStateKey, state)

		ctx := c.Request().Context()
		username := state.Principal.Name
		ctx = deliverycontext.WithUsername(ctx, username)
		ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("username", username)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePermission rejects sessions whose role lacks permission with 403.
// It must be used AFTER RequireAuthenticated.
func (m *AuthMiddleware) RequirePermission(permission service.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, ok := GetAuthState(c)
			if !ok {
				state = m.sessions.Current(c.Request().Context())
			}

			if !permission.Allows(state.Role()) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Permission denied",
					slog.String("permission", string(permission)),
					slog.String("role", state.Role().String()),
				)

				return errors.Wrapf(domainerrors.ErrForbidden, "missing permission %s", permission)
			}

			return next(c)
		}
	}
}

// GetAuthState returns the session state stored by RequireAuthenticated.
func GetAuthState(c echo.Context) (*entity.AuthState, bool) {
	state, ok := c.Get(authStateKey).(*entity.AuthState)

	return state, ok && state.IsAuthenticated()
}
