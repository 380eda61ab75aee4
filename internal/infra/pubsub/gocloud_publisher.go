package pubsub

import (
	"context"
	"log/slog"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/pkg/errors"
	gcpubsub "gocloud.dev/pubsub"
	// Registers the mem:// scheme.
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher implements AuthStatePublisher over any Go CDK topic URL.
type goCloudPublisher struct {
	topic  *gcpubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at topicURL, e.g. mem://auth-state.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.AuthStatePublisher, error) {
	topic, err := gcpubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

func (p *goCloudPublisher) PublishAuthStateEvent(ctx context.Context, event *entity.AuthStateEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &gcpubsub.Message{Body: env.body, Metadata: env.attributes}); err != nil {
		return errors.Wrapf(err, "send %s event", env.transition())
	}

	p.logger.Debug("auth state event sent",
		slog.String("transition", env.transition()),
		slog.String("username", event.Username),
	)

	return nil
}

func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
