package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// DeliveryReport summarises one push fan-out.
type DeliveryReport struct {
	Devices       int
	Sent          int
	Failed        int
	Deactivated   int64
	InvalidTokens []string
}

// NotificationUsecase defines in-app notifications and order push delivery.
type NotificationUsecase interface {
	// ListNotifications pages the inbox, newest first by default.
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, page PageInput) (*entity.Page[*entity.Notification], error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeliverOrderEvent pushes an order status change to the customer's active
	// devices and deactivates the tokens the provider rejects.
	DeliverOrderEvent(ctx context.Context, event *service.OrderEvent) (*DeliveryReport, error)
}
