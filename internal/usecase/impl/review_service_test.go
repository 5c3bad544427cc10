package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:  fx.reviewRepo,
		ProductRepo: fx.productRepo,
		UserRepo:    fx.userRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*reviewService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func TestReviewService_CreateReview(t *testing.T) {
	customer := entity.NewCustomer("Jane", "jane@example.com", "hash", testNow)
	product := newTestProduct(uuid.New())

	t.Run("success", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.reviewRepo.EXPECT().ExistsByCustomerAndProduct(ctx, customer.ID, product.ID).Return(false, nil)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := fx.service.CreateReview(ctx, customer.ID, product.ID, &usecase.ReviewInput{Rating: 5, Comment: "great"})

		require.NoError(t, err)
		assert.Equal(t, "Jane", review.CustomerName)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("second review is rejected by the pre-check", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.reviewRepo.EXPECT().ExistsByCustomerAndProduct(ctx, customer.ID, product.ID).Return(true, nil)

		_, err := fx.service.CreateReview(ctx, customer.ID, product.ID, &usecase.ReviewInput{Rating: 4})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
	})

	t.Run("second review is rejected by the unique index", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.reviewRepo.EXPECT().ExistsByCustomerAndProduct(ctx, customer.ID, product.ID).Return(false, nil)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReview)

		_, err := fx.service.CreateReview(ctx, customer.ID, product.ID, &usecase.ReviewInput{Rating: 4})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
	})

	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestReviewService(t)

		for _, rating := range []int{0, 6} {
			_, err := fx.service.CreateReview(context.Background(), customer.ID, product.ID, &usecase.ReviewInput{Rating: rating})
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		}
	})
}

func TestReviewService_OwnershipChecks(t *testing.T) {
	owner := uuid.New()
	review := &entity.Review{ID: uuid.New(), CustomerID: owner, Rating: 3}

	t.Run("someone else's review is forbidden", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil).Twice()

		_, err := fx.service.UpdateReview(ctx, uuid.New(), review.ID, &usecase.ReviewInput{Rating: 1})
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

		err = fx.service.DeleteReview(ctx, uuid.New(), review.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
		fx.reviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)

		assert.NoError(t, fx.service.DeleteReview(ctx, owner, review.ID))
	})

	t.Run("admin deletes without lookup", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().Delete(ctx, review.ID).Return(repository.ErrReviewNotFound)

		err := fx.service.DeleteAnyReview(ctx, review.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})
}
