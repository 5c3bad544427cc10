package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	pager       pager
	logger      *slog.Logger
	now         func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		pager:       newPager(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateRating(rating int) error {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return domainerrors.ErrValidationFailed.WithDetailsf("rating must be between %d and %d", entity.MinRating, entity.MaxRating)
	}

	return nil
}

// CreateReview adds the customer's only review of a product.
func (srv *reviewService) CreateReview(ctx context.Context, customerID, productID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "find reviewed product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	exists, err := srv.reviewRepo.ExistsByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return nil, domainerrors.ErrReviewAlreadyExists
	}

	customer, err := srv.userRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "find reviewer")
		}

		return nil, errors.Wrap(err, "failed to find reviewer")
	}

	now := srv.now()
	review := &entity.Review{
		ID:           uuid.New(),
		ProductID:    productID,
		CustomerID:   customerID,
		CustomerName: customer.Name,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Images:       input.Images,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID), slog.Any("productID", productID))

	return review, nil
}

// findOwnReview rejects reviews written by someone else with Forbidden.
func (srv *reviewService) findOwnReview(ctx context.Context, customerID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden.WithDetails("review belongs to another customer")
	}

	return review, nil
}

func (srv *reviewService) findReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "find review")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

func (srv *reviewService) UpdateReview(ctx context.Context, customerID, reviewID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	review, err := srv.findOwnReview(ctx, customerID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	review.Images = input.Images
	review.UpdatedAt = srv.now()

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "update review")
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, customerID, reviewID uuid.UUID) error {
	if _, err := srv.findOwnReview(ctx, customerID, reviewID); err != nil {
		return err
	}

	return srv.deleteReview(ctx, reviewID)
}

func (srv *reviewService) DeleteAnyReview(ctx context.Context, reviewID uuid.UUID) error {
	return srv.deleteReview(ctx, reviewID)
}

func (srv *reviewService) deleteReview(ctx context.Context, reviewID uuid.UUID) error {
	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, "delete review")
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

func (srv *reviewService) ListMyReviews(ctx context.Context, customerID uuid.UUID, in usecase.PageInput) (*entity.Page[*entity.Review], error) {
	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	reviews, total, err := srv.reviewRepo.ListByCustomer(ctx, customerID, page)
	if err != nil {
		return nil, translateListError(err, "failed to list reviews")
	}

	return entity.NewPage(reviews, page, total), nil
}

func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, in usecase.PageInput) (*entity.Page[*entity.Review], error) {
	page, err := srv.pager.request(in)
	if err != nil {
		return nil, err
	}

	reviews, total, err := srv.reviewRepo.ListByProduct(ctx, productID, page)
	if err != nil {
		return nil, translateListError(err, "failed to list reviews")
	}

	return entity.NewPage(reviews, page, total), nil
}
