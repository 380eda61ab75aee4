package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	defaultLocalPushScope = "projects/local/subscriptions/hrm-auth-state"
)

// PushMessage is the message half of a Pub/Sub push request body.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

// PushRequest mirrors the JSON body Cloud Pub/Sub posts to push endpoints,
// so a subscriber can be developed locally without the emulator.
type PushRequest struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	logger       *slog.Logger
}

// NewLocalHTTPPublisher posts each event to endpoint as a push request.
// An empty subscription falls back to a fixed local name.
func NewLocalHTTPPublisher(endpoint, subscription string, logger *slog.Logger) service.AuthStatePublisher {
	if subscription == "" {
		subscription = defaultLocalPushScope
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: subscription,
		client:       &http.Client{Timeout: localPushTimeout},
		logger:       logger.With(slog.String("endpoint", endpoint)),
	}
}

func (p *localHTTPPublisher) PublishAuthStateEvent(ctx context.Context, event *entity.AuthStateEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushRequest{
		Subscription: p.subscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(env.body),
			Attributes:  env.attributes,
			MessageID:   uuid.NewString(),
			OrderingKey: env.orderingKey,
			PublishTime: env.publishedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event", env.transition())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s event", resp.StatusCode, env.transition())
	}

	p.logger.Debug("auth state event pushed",
		slog.String("transition", env.transition()),
		slog.String("username", event.Username),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
