package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends session transitions to a Cloud Pub/Sub topic with
// per-user message ordering.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.AuthStatePublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub client for project %s", projectID)
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger.With(slog.String("topic", topic)),
	}, nil
}

func (p *googlePublisher) PublishAuthStateEvent(ctx context.Context, event *entity.AuthStateEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        env.body,
		Attributes:  env.attributes,
		OrderingKey: env.orderingKey,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		// An ordered key stays paused after a failure until resumed.
		if env.orderingKey != "" {
			p.publisher.ResumePublish(env.orderingKey)
		}

		return errors.Wrapf(err, "publish %s event", env.transition())
	}

	p.logger.Debug("auth state event published",
		slog.String("transition", env.transition()),
		slog.String("username", event.Username),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
