package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a message sent by a customer or a store to the admins.
type Feedback struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorRole Role
	Title      string
	Content    string
	Resolved   bool
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

// FeedbackStatusFilter narrows feedback listings.
type FeedbackStatusFilter string

const (
	FeedbackStatusAll        FeedbackStatusFilter = "all"
	FeedbackStatusResolved   FeedbackStatusFilter = "resolved"
	FeedbackStatusUnresolved FeedbackStatusFilter = "unresolved"
)

// IsValid checks if the filter is a known value.
func (f FeedbackStatusFilter) IsValid() bool {
	switch f {
	case FeedbackStatusAll, FeedbackStatusResolved, FeedbackStatusUnresolved:
		return true
	default:
		return false
	}
}
