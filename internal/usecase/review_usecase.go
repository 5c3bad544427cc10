package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput defines the content of a review.
type ReviewInput struct {
	Rating  int
	Comment string
	Images  []string
}

// ReviewUsecase defines product review operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, customerID, productID uuid.UUID, input *ReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, customerID, reviewID uuid.UUID, input *ReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, customerID, reviewID uuid.UUID) error
	// DeleteAnyReview is the admin moderation path.
	DeleteAnyReview(ctx context.Context, reviewID uuid.UUID) error

	ListMyReviews(ctx context.Context, customerID uuid.UUID, page PageInput) (*entity.Page[*entity.Review], error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, page PageInput) (*entity.Page[*entity.Review], error)
}
