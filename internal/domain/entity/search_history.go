package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistory records a product search keyword typed by a user.
type SearchHistory struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Keyword   string
	CreatedAt time.Time
}
