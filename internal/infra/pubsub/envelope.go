package pubsub

import (
	"encoding/json"
	"strconv"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/pkg/errors"
)

// envelope is the transport-neutral form of an AuthStateEvent shared by every publisher.
type envelope struct {
	body        []byte
	attributes  map[string]string
	orderingKey string
	publishedAt time.Time
}

// newEnvelope encodes event. Events for the same user share an ordering key so
// a login is never delivered after the logout that followed it.
func newEnvelope(event *entity.AuthStateEvent) (*envelope, error) {
	if event == nil {
		return nil, errors.New("nil auth state event")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode auth state event")
	}

	attributes := map[string]string{
		"topic":         service.AuthStateTopic,
		"authenticated": strconv.FormatBool(event.Authenticated),
	}
	if event.Username != "" {
		attributes["username"] = event.Username
	}
	if event.Role != "" {
		attributes["role"] = event.Role
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &envelope{
		body:        body,
		attributes:  attributes,
		orderingKey: event.Username,
		publishedAt: time.Unix(event.OccurredAt, 0).UTC(),
	}, nil
}

func (e *envelope) transition() string {
	if e.attributes["authenticated"] == "true" {
		return "login"
	}

	return "logout"
}
