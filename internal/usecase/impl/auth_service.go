package impl

import (
	"context"
	"log/slog"

	deliverycontext "hotelhrm/internal/delivery/context"
	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
// It holds no per-user state: the session bound to ctx is the only record of who is signed in.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	sessions  usecase.SessionUsecase
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Sessions  usecase.SessionUsecase
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies credentials against the credential store.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to find user by username")
		}
		user = found

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Warn("Authentication denied", slog.String("username", username))

			return nil, err
		}
		srv.log(ctx).Error("Failed to load user for authentication", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to authenticate user")
	}

	if !user.IsActive || !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication denied", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credentials rejected")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.rehash(ctx, user, password)
	}

	srv.log(ctx).Debug("User authenticated", slog.Int64("user_id", user.ID), slog.String("username", user.Username))

	return user, nil
}

// rehash upgrades a stored digest to the configured algorithm. Failures leave the old digest in place.
func (srv *authService) rehash(ctx context.Context, user *entity.User, password string) {
	digest, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Int64("user_id", user.ID), slog.Any("error", err))

		return
	}

	updated := user.Clone()
	updated.PasswordHash = digest
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Update(ctx, updated)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to store rehashed password", slog.Int64("user_id", user.ID), slog.Any("error", err))

		return
	}

	user.PasswordHash = digest
	srv.log(ctx).Info("Password digest upgraded", slog.Int64("user_id", user.ID))
}

// Login authenticates the user and records them in the current session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	state := srv.sessions.Login(ctx, user)
	if !state.IsAuthenticated() {
		srv.log(ctx).Error("Session could not be established", slog.String("username", user.Username))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to establish session")
	}

	return &usecase.LoginOutput{User: user, State: state}, nil
}

// Logout clears the current session.
func (srv *authService) Logout(ctx context.Context) *entity.AuthState {
	return srv.sessions.Logout(ctx)
}

// CurrentUser resolves the signed-in user from the session claims.
func (srv *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	state := srv.sessions.Current(ctx)
	if !state.IsAuthenticated() {
		return nil, nil
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, state.Principal.Name)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Session user no longer exists", slog.String("username", state.Principal.Name))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// IsInRole is false for anonymous sessions whatever role is asked for.
func (srv *authService) IsInRole(ctx context.Context, role entity.Role) bool {
	state := srv.sessions.Current(ctx)

	return state.IsAuthenticated() && service.IsInRole(state.Role(), role)
}

func (srv *authService) CanModifyEmployeeData(ctx context.Context) bool {
	return service.CanModifyEmployeeData(srv.sessions.Current(ctx).Role())
}

func (srv *authService) CanModifyPayrollData(ctx context.Context) bool {
	return service.CanModifyPayrollData(srv.sessions.Current(ctx).Role())
}
