package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"hotelhrm/config"
	"hotelhrm/internal/delivery"
	apimiddleware "hotelhrm/internal/delivery/api/middleware"
	"hotelhrm/internal/delivery/api/router"
	"hotelhrm/internal/delivery/api/validator"
	"hotelhrm/internal/delivery/middleware"
	"hotelhrm/internal/domain/lifecycle"
	"hotelhrm/internal/errors"
	"hotelhrm/internal/infra/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	SessionStore session.Store
	RouterParams router.RouterParams
}

// NewEcho builds the HRM API: shared middleware, error rendering, validation
// and the auth, employee and payroll routes.
func NewEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: request ids and the access log wrap everything after them,
	// and the session must be bound before any handler reads it.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, cfg).Handle,
		corsMiddleware(cfg),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
		middleware.NewSessionMiddleware(params.SessionStore).Process,
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// corsMiddleware admits credentialed requests only from configured origins;
// with none configured it falls back to echo's permissive default.
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		return echomiddleware.CORS()
	}

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
	})
}

type server struct {
	addr   string
	h2     *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// NewServer wraps NewEcho as an h2c delivery that shuts down with the app.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &server{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		echo:   NewEcho(params),
		logger: params.Logger.With(slog.String("delivery", "api")),
	}

	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

func (s *server) Serve(_ context.Context) error {
	s.logger.Info("hrm api listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("hrm api shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
