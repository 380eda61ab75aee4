package usecase

import (
	"context"

	"hotelhrm/internal/domain/entity"
)

// AuthStateObserver is notified synchronously after every session transition.
type AuthStateObserver func(ctx context.Context, state *entity.AuthState)

// SessionUsecase is the per-browser-session authentication state machine.
// The storage it acts on is the one bound to ctx.
type SessionUsecase interface {
	// Login moves the session to Authenticated(claims of user).
	// If the claims cannot be written the session reads as Anonymous.
	Login(ctx context.Context, user *entity.User) *entity.AuthState

	// Logout moves the session to Anonymous.
	Logout(ctx context.Context) *entity.AuthState

	// Current reads the session state. It never fails: any read problem is Anonymous.
	Current(ctx context.Context) *entity.AuthState

	// Subscribe registers an observer and returns a function removing it.
	Subscribe(observer AuthStateObserver) (unsubscribe func())
}
