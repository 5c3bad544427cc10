package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeedbackNotFound is returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists feedback sent to admins.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// List supports the fields resolved and createdAt.
	List(ctx context.Context, criteria *Criteria, page entity.PageRequest) ([]*entity.Feedback, int64, error)

	// MarkResolved resolves the feedback; resolving twice keeps the first timestamp.
	MarkResolved(ctx context.Context, id uuid.UUID, now time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
}
