package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the customer already reviewed the product.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ExistsByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProduct removes every review of a product.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	ListByProduct(ctx context.Context, productID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page entity.PageRequest) ([]*entity.Review, int64, error)

	// SummarizeByProduct returns the average rating and review count.
	SummarizeByProduct(ctx context.Context, productID uuid.UUID) (entity.RatingSummary, error)
}
