package repository

import (
	"context"

	"hotelhrm/internal/domain/entity"
)

// SessionStorage is the durable storage of one browser session.
// It is opaque beyond these operations and never shared across sessions.
type SessionStorage interface {
	// Get loads the claims under key. A miss is reported as ok=false with a nil error.
	Get(ctx context.Context, key string) (claims *entity.SessionClaims, ok bool, err error)

	// Set stores claims under key.
	Set(ctx context.Context, key string, claims *entity.SessionClaims) error

	// Delete removes the entry under key; deleting a missing entry is not an error.
	Delete(ctx context.Context, key string) error
}
