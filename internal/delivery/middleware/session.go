package middleware

import (
	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/infra/session"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware binds the browser session of each request to its context.
type SessionMiddleware struct {
	store session.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Process opens the session storage for the request and stores it in context.Context
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		storage := m.store.Open(c.Response(), c.Request())

		ctx := deliverycontext.WithSessionStorage(c.Request().Context(), storage)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
