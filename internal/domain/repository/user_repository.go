// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hotelhrm/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when a create or update would duplicate a username.
var ErrUsernameTaken = errors.New("username already exists")

// UserRepository is the credential store contract.
type UserRepository interface {
	// FindByUsername retrieves a user by username, compared case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their identity.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the user with the same ID.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user, reporting whether one existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns every user.
	List(ctx context.Context) ([]*entity.User, error)
}
