package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/infra/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddlewareBindsStorage(t *testing.T) {
	store := session.NewMemoryStore(session.MemoryStoreOptions{MaxAge: time.Hour})
	m := NewSessionMiddleware(store)
	e := echo.New()

	// first request writes the claims
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Process(func(c echo.Context) error {
		storage := deliverycontext.GetSessionStorage(c.Request().Context())
		require.NotNil(t, storage)

		return storage.Set(c.Request().Context(), entity.SessionKey, &entity.SessionClaims{Username: "alice", Role: "HR"})
	})(c)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.SessionIDCookie, cookies[0].Name)

	// a second request carrying the cookie reads them back
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	c = e.NewContext(req, httptest.NewRecorder())

	err = m.Process(func(c echo.Context) error {
		claims, ok, err := deliverycontext.GetSessionStorage(c.Request().Context()).Get(c.Request().Context(), entity.SessionKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "alice", claims.Username)

		return nil
	})(c)
	require.NoError(t, err)
}
