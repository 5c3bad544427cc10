package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message kept for a user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	OrderID   *uuid.UUID
	Title     string
	Content   string
	Read      bool
	CreatedAt time.Time
}
