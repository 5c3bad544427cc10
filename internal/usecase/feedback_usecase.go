package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackInput defines a message sent to the admins.
type FeedbackInput struct {
	Title   string
	Content string
}

// FeedbackUsecase defines feedback submission and moderation.
type FeedbackUsecase interface {
	Submit(ctx context.Context, authorID uuid.UUID, authorRole entity.Role, input *FeedbackInput) (*entity.Feedback, error)

	List(ctx context.Context, status entity.FeedbackStatusFilter, page PageInput) (*entity.Page[*entity.Feedback], error)
	Get(ctx context.Context, feedbackID uuid.UUID) (*entity.Feedback, error)
	// Resolve marks the feedback resolved; resolving twice is not an error.
	Resolve(ctx context.Context, feedbackID uuid.UUID) (*entity.Feedback, error)
	Delete(ctx context.Context, feedbackID uuid.UUID) error
}
