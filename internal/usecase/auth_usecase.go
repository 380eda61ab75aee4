// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hotelhrm/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to sign in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user and the session state written for them.
type LoginOutput struct {
	User  *entity.User
	State *entity.AuthState
}

// AuthUsecase defines credential checks and the capability queries evaluated
// against the current browser session.
type AuthUsecase interface {
	// Authenticate verifies credentials. Every failure is ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context) *entity.AuthState

	// CurrentUser returns nil without error when the session is anonymous
	// or the signed-in user no longer exists.
	CurrentUser(ctx context.Context) (*entity.User, error)
	IsInRole(ctx context.Context, role entity.Role) bool
	CanModifyEmployeeData(ctx context.Context) bool
	CanModifyPayrollData(ctx context.Context) bool
}
