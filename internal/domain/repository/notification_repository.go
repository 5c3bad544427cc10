package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists in-app notifications. Every read and update
// is scoped to the owning user.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser pages the user's notifications. unreadOnly hides read ones.
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.PageRequest) ([]*entity.Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	// MarkAllRead returns how many notifications changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
