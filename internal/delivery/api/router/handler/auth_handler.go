package handler

import (
	"log/slog"
	"net/http"

	"hotelhrm/internal/delivery/api/response"
	"hotelhrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	SessionsUC usecase.SessionUsecase
	Logger     *slog.Logger
}

// AuthHandler holds dependencies for sign-in and session handlers
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	sessionsUC usecase.SessionUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:     params.AuthUC,
		sessionsUC: params.SessionsUC,
		logger:     params.Logger,
	}
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	output, err := h.authUC.Login(ctx, usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		User:    newUserResponse(output.User),
		Session: newSessionResponse(output.State, h.authUC.CanModifyEmployeeData(ctx), h.authUC.CanModifyPayrollData(ctx)),
	})
}

// Logout handles the user logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	state := h.authUC.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, &AuthResponse{
		Session: newSessionResponse(state, false, false),
	})
}

// Me returns the signed-in user and the capabilities of the session.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.authUC.CurrentUser(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state := h.sessionsUC.Current(ctx)

	return response.Success(c, http.StatusOK, &AuthResponse{
		User:    newUserResponse(user),
		Session: newSessionResponse(state, h.authUC.CanModifyEmployeeData(ctx), h.authUC.CanModifyPayrollData(ctx)),
	})
}
