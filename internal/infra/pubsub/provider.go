// Package pubsub publishes session state transitions to a message bus.
package pubsub

import (
	"context"
	"log/slog"

	"hotelhrm/config"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.AuthStatePublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishAuthStateEvent(_ context.Context, event *entity.AuthStateEvent) error {
	p.logger.Debug("auth state event dropped, pubsub disabled", slog.Bool("authenticated", event.Authenticated))

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for AuthStatePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherBuilder func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.AuthStatePublisher, error)

var builders = map[string]publisherBuilder{
	config.PubSubProviderGoCloud: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.AuthStatePublisher, error) {
		if cfg.TopicURL == "" {
			return nil, errors.New("pubsub.topicUrl is required for the gocloud provider")
		}

		return NewGoCloudPublisher(ctx, cfg.TopicURL, logger)
	},
	config.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.AuthStatePublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.LocalSubscription, logger), nil
	},
	config.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.AuthStatePublisher, error) {
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
}

// NewAuthStatePublisher picks the publisher named by pubsub.provider and
// closes it on shutdown. A missing section or "noop" disables publishing.
func NewAuthStatePublisher(params PublisherParams) (service.AuthStatePublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.PubSubProviderNoop {
		params.Logger.Info("pubsub disabled, auth state events are dropped")

		return NewNoopPublisher(params.Logger), nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	logger := params.Logger.With(slog.String("pubsub_provider", cfg.Provider))
	publisher, err := build(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("auth state publisher ready")

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
