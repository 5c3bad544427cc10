package service

import (
	"context"
	"time"
)

// EventTypeOrderStatusChanged is the event_type attribute of order status events.
const EventTypeOrderStatusChanged = "order.status_changed"

// OrderEvent announces an order status change to the worker.
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	StoreID    string    `json:"store_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher sends domain events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
