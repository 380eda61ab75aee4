// Command hotelhrm serves the hotel staff HRM API: sessions, employee records
// and payroll, all behind role-based permissions.
package main

import (
	"context"
	"log/slog"

	"hotelhrm/config"
	"hotelhrm/internal/delivery"
	"hotelhrm/internal/delivery/api"
	apimiddleware "hotelhrm/internal/delivery/api/middleware"
	"hotelhrm/internal/delivery/api/router/handler"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/infra/auth"
	logs "hotelhrm/internal/infra/log"
	"hotelhrm/internal/infra/persistence"
	"hotelhrm/internal/infra/persistence/seed"
	"hotelhrm/internal/infra/pubsub"
	"hotelhrm/internal/infra/qrcode"
	"hotelhrm/internal/infra/session"
	"hotelhrm/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		infraModule,
		storageModule,
		impl.Module,
		httpModule,
		fx.Invoke(seed.Register, serve),
	).Run()
}

var infraModule = fx.Module("infra",
	fx.Provide(
		config.New,
		logs.New,
		context.Background,
		service.NewSystemClock,
		auth.NewPasswordHasher,
		pubsub.NewAuthStatePublisher,
		newQRCodeService,
	),
)

var storageModule = fx.Module("storage",
	fx.Provide(
		persistence.New,
		session.NewStore,
	),
)

var httpModule = fx.Module("http",
	fx.Provide(
		apimiddleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		handler.NewEmployeeHandler,
		handler.NewPayrollHandler,
		fx.Annotate(api.NewServer, fx.ResultTags(`group:"deliveries"`)),
	),
)

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

type serveParams struct {
	fx.In

	Ctx        context.Context
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// serve runs every delivery once the app has started. A delivery that fails
// takes the whole process down with exit code 1.
func serve(lc fx.Lifecycle, params serveParams) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(params.Ctx); err != nil {
						params.Logger.Error("delivery stopped", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
