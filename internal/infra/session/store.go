package session

import (
	"context"
	"log/slog"
	"net/http"

	"hotelhrm/config"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/errors"

	"go.uber.org/fx"
)

// Store opens the session storage of the browser that sent a request.
// Writes made through the returned storage are sent back on w as cookies,
// so they must happen before the response body is written.
type Store interface {
	Open(w http.ResponseWriter, r *http.Request) repository.SessionStorage
}

// Params holds dependencies for the session store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// NewStore builds the store selected by session.store.
func NewStore(params Params) (Store, error) {
	cfg := params.Config.Session
	if cfg == nil {
		return nil, errors.New("session configuration is missing")
	}

	switch cfg.Store {
	case config.SessionStoreMemory:
		store := NewMemoryStore(MemoryStoreOptions{
			MaxAge: cfg.MaxAge,
			Secure: cfg.Secure,
			Clock:  params.Clock,
			Logger: params.Logger,
		})
		params.Append(fx.Hook{
			OnStart: func(context.Context) error {
				store.StartJanitor(cfg.CleanupInterval)

				return nil
			},
			OnStop: func(context.Context) error {
				store.StopJanitor()

				return nil
			},
		})

		return store, nil
	case config.SessionStoreCookie, "":
		return NewCookieStore(CookieStoreOptions{
			Secret: cfg.Secret,
			MaxAge: cfg.MaxAge,
			Secure: cfg.Secure,
			Clock:  params.Clock,
		})
	default:
		return nil, errors.Errorf("unsupported session store: %s", cfg.Store)
	}
}

func newCookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
