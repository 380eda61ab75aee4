package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"hotelhrm/config"
	"hotelhrm/internal/domain/lifecycle"
	"hotelhrm/internal/errors"
	"hotelhrm/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolWaitWarnLatency = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the HRM database, migrates the schema on start and samples the
// connection pool until stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("storage driver is postgres but the postgres section is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Needed by classifyViolation.
	db.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	monitor := &poolMonitor{stats: sqlDB.Stats, logger: params.Logger.With(slog.String("component", "postgres_pool"))}
	stopMonitor := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if err := Migrate(ctx, db); err != nil {
				return err
			}

			var monitorCtx context.Context
			monitorCtx, stopMonitor = context.WithCancel(context.Background())
			go monitor.run(monitorCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

// Migrate creates or alters the users, employees and payroll_records tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "migrate hrm schema")
	}

	return nil
}

// poolMonitor reports requests that had to wait for a free connection.
type poolMonitor struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	last   sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.last = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

// sample compares the current stats with the previous sample.
func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	defer func() { m.last = cur }()

	waits := cur.WaitCount - m.last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - m.last.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnLatency {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "postgres connection pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
