// Package pubsub publishes order events for the worker to fan out as pushes.
//
// Events of one order share an ordering key so a subscriber sees the status
// changes of an order in the sequence they were committed.
package pubsub

import (
	"encoding/json"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// envelope is an order event ready to hand to a transport.
type envelope struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newEnvelope(event *service.OrderEvent) (*envelope, error) {
	if event == nil || event.OrderID == "" {
		return nil, errors.New("order event without order id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encoding order event")
	}

	attributes := map[string]string{
		constants.AttrEventType: event.EventType,
		constants.AttrOrderID:   event.OrderID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return &envelope{
		data:        data,
		attributes:  attributes,
		orderingKey: event.OrderID,
	}, nil
}
