package context

import (
	"context"

	"hotelhrm/internal/domain/repository"
)

// KeySessionStorage is the key for storing the browser session storage in context.
const KeySessionStorage ContextKey = "session_storage"

// WithSessionStorage returns a new context bound to the given session storage.
func WithSessionStorage(ctx context.Context, storage repository.SessionStorage) context.Context {
	return context.WithValue(ctx, KeySessionStorage, storage)
}

// GetSessionStorage extracts the session storage bound to the context.
// Returns nil when no storage is bound.
func GetSessionStorage(ctx context.Context) repository.SessionStorage {
	if storage, ok := ctx.Value(KeySessionStorage).(repository.SessionStorage); ok {
		return storage
	}

	return nil
}
