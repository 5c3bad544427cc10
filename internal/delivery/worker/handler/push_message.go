package handler

import (
	"encoding/base64"
	"encoding/json"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// PubSubMessage is the JSON body Pub/Sub posts to a push subscription.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// attr returns a message attribute, or "" when the message has none.
func (m *PubSubMessage) attr(key string) string {
	return m.Message.Attributes[key]
}

// orderEvent decodes the base64 payload. The event_type attribute wins over
// the payload field so publishers can reroute without touching the body.
func (m *PubSubMessage) orderEvent() (*service.OrderEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	event := new(service.OrderEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, errors.Wrap(err, "message data is not an order event")
	}
	if t := m.attr(constants.AttrEventType); t != "" {
		event.EventType = t
	}

	return event, nil
}
