// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"go.uber.org/fx"
)

type observerEntry struct {
	id       uint64
	observer usecase.AuthStateObserver
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	publisher service.AuthStatePublisher
	clock     service.Clock
	logger    *slog.Logger

	mu        sync.RWMutex
	nextID    uint64
	observers []observerEntry
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Publisher service.AuthStatePublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		publisher: params.Publisher,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login writes the claims of user to the session bound to ctx.
func (srv *sessionService) Login(ctx context.Context, user *entity.User) *entity.AuthState {
	if user == nil {
		srv.log(ctx).Warn("Session login called without a user")

		return entity.Anonymous()
	}

	storage := deliverycontext.GetSessionStorage(ctx)
	if storage == nil {
		srv.log(ctx).Warn("No session storage bound, login not persisted", slog.String("username", user.Username))

		return entity.Anonymous()
	}

	claims := entity.ClaimsFromUser(user)
	if err := storage.Set(ctx, entity.SessionKey, claims); err != nil {
		srv.log(ctx).Warn("Failed to write session claims", slog.String("username", user.Username), slog.Any("error", err))

		return entity.Anonymous()
	}

	state := entity.Authenticated(claims)
	srv.log(ctx).Info("Session authenticated", slog.String("username", claims.Username), slog.String("role", claims.Role))
	srv.notify(ctx, state)

	return state
}

// Logout clears the session bound to ctx.
func (srv *sessionService) Logout(ctx context.Context) *entity.AuthState {
	storage := deliverycontext.GetSessionStorage(ctx)
	if storage == nil {
		srv.log(ctx).Warn("No session storage bound, logout not persisted")

		return entity.Anonymous()
	}

	if err := storage.Delete(ctx, entity.SessionKey); err != nil {
		srv.log(ctx).Warn("Failed to delete session claims", slog.Any("error", err))

		return entity.Anonymous()
	}

	state := entity.Anonymous()
	srv.log(ctx).Info("Session cleared")
	srv.notify(ctx, state)

	return state
}

// Current reads the state of the session bound to ctx.
func (srv *sessionService) Current(ctx context.Context) *entity.AuthState {
	storage := deliverycontext.GetSessionStorage(ctx)
	if storage == nil {
		srv.log(ctx).Debug("No session storage bound, treating as anonymous")

		return entity.Anonymous()
	}

	claims, ok, err := storage.Get(ctx, entity.SessionKey)
	if err != nil {
		srv.log(ctx).Warn("Failed to read session claims, treating as anonymous", slog.Any("error", err))

		return entity.Anonymous()
	}
	if !ok || claims == nil {
		return entity.Anonymous()
	}

	return entity.Authenticated(claims)
}

// Subscribe registers observer for every later transition.
func (srv *sessionService) Subscribe(observer usecase.AuthStateObserver) func() {
	if observer == nil {
		return func() {}
	}

	srv.mu.Lock()
	srv.nextID++
	id := srv.nextID
	srv.observers = append(srv.observers, observerEntry{id: id, observer: observer})
	srv.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.mu.Lock()
			defer srv.mu.Unlock()

			for i, entry := range srv.observers {
				if entry.id == id {
					srv.observers = append(srv.observers[:i:i], srv.observers[i+1:]...)

					break
				}
			}
		})
	}
}

func (srv *sessionService) notify(ctx context.Context, state *entity.AuthState) {
	srv.mu.RLock()
	observers := make([]usecase.AuthStateObserver, 0, len(srv.observers))
	for _, entry := range srv.observers {
		observers = append(observers, entry.observer)
	}
	srv.mu.RUnlock()

	for _, observer := range observers {
		observer(ctx, state)
	}

	if srv.publisher == nil {
		return
	}

	event := &entity.AuthStateEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Authenticated: state.IsAuthenticated(),
		OccurredAt:    srv.clock.Now().UnixMilli(),
	}
	if state.IsAuthenticated() {
		event.Username = state.Principal.Name
		event.Role = state.Principal.Role.String()
	}

	if err := srv.publisher.PublishAuthStateEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session state event", slog.Any("error", err))
	}
}
