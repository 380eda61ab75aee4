package service

import (
	"context"

	"hotelhrm/internal/domain/entity"
)

// AuthStateTopic is the topic session transitions are published on.
const AuthStateTopic = "auth-state"

// AuthStatePublisher publishes session state transitions to a message bus
type AuthStatePublisher interface {
	// PublishAuthStateEvent publishes one transition
	PublishAuthStateEvent(ctx context.Context, event *entity.AuthStateEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
