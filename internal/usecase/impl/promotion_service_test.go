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

type promotionServiceFixtures struct {
	service       usecase.PromotionUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	promotionRepo *mockRepo.MockPromotionRepository
}

func createTestPromotionService(t *testing.T) promotionServiceFixtures {
	fx := promotionServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
	}

	svc := NewPromotionService(PromotionServiceParams{
		TxManager:     fx.txManager,
		PromotionRepo: fx.promotionRepo,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})
	svc.(*promotionService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func validSetInput(quantity int) *usecase.PromotionSetInput {
	return &usecase.PromotionSetInput{
		Code:      "SPRING",
		Percent:   15,
		Quantity:  quantity,
		StartAt:   testNow.Add(-time.Hour),
		ExpiredAt: testNow.Add(48 * time.Hour),
	}
}

func TestPromotionService_CreateSet_CreatesItems(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	storeID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
	fx.promotionRepo.EXPECT().
		CreateSet(ctx, mock.MatchedBy(func(s *entity.PromotionSet) bool {
			return s.Kind == entity.PromotionKindCouponSet && *s.StoreID == storeID
		})).
		Return(nil)
	fx.promotionRepo.EXPECT().
		AddItems(ctx, mock.MatchedBy(func(items []*entity.PromotionItem) bool { return len(items) == 4 })).
		Return(nil)

	set, err := fx.service.CreateSet(ctx, entity.CouponScope(storeID), validSetInput(4))

	require.NoError(t, err)
	assert.Equal(t, int64(4), set.QuantityAvailable)
	assert.Equal(t, int64(4), set.QuantityTotal)
}

func TestPromotionService_CreateSet_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.PromotionSetInput)
		want   error
	}{
		{"zero percent", func(in *usecase.PromotionSetInput) { in.Percent = 0 }, domainerrors.ErrInvalidPromotion},
		{"over one hundred percent", func(in *usecase.PromotionSetInput) { in.Percent = 101 }, domainerrors.ErrInvalidPromotion},
		{"expiry before start", func(in *usecase.PromotionSetInput) { in.ExpiredAt = in.StartAt.Add(-time.Minute) }, domainerrors.ErrInvalidPromotion},
		{"no items", func(in *usecase.PromotionSetInput) { in.Quantity = 0 }, domainerrors.ErrValidationFailed},
		{"too many items", func(in *usecase.PromotionSetInput) { in.Quantity = 101 }, domainerrors.ErrValidationFailed},
		{"blank code", func(in *usecase.PromotionSetInput) { in.Code = " " }, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionService(t)
			input := validSetInput(1)
			tt.mutate(input)

			_, err := fx.service.CreateSet(context.Background(), entity.VoucherScope(), input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestPromotionService_AddItems(t *testing.T) {
	storeID := uuid.New()
	set := activeSet(entity.PromotionKindCouponSet, &storeID, 10)

	t.Run("adds n items and returns the reloaded set", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()
		reloaded := *set
		reloaded.QuantityAvailable = 7
		reloaded.QuantityTotal = 9

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
		fx.promotionRepo.EXPECT().FindSetByIDForUpdate(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().
			AddItems(ctx, mock.MatchedBy(func(items []*entity.PromotionItem) bool {
				if len(items) != 5 {
					return false
				}
				for _, item := range items {
					if item.SetID != set.ID || !item.IsAvailable() || !item.CreatedAt.Equal(testNow) {
						return false
					}
				}

				return true
			})).
			Return(nil)
		fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(&reloaded, nil)

		updated, err := fx.service.AddItems(ctx, entity.CouponScope(storeID), set.ID, 5)

		require.NoError(t, err)
		assert.Equal(t, &reloaded, updated)
	})

	t.Run("another store's set reads as not found", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
		fx.promotionRepo.EXPECT().FindSetByIDForUpdate(ctx, set.ID).Return(set, nil)

		_, err := fx.service.AddItems(ctx, entity.CouponScope(uuid.New()), set.ID, 5)

		assert.True(t, errors.Is(err, domainerrors.ErrPromotionSetNotFound))
	})

	t.Run("quantity out of range", func(t *testing.T) {
		for _, n := range []int{0, -1, 101, 1 << 62} {
			fx := createTestPromotionService(t)

			var err error
			assert.NotPanics(t, func() {
				_, err = fx.service.AddItems(context.Background(), entity.CouponScope(storeID), set.ID, n)
			})

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "quantity %d", n)
		}
	})
}

func TestPromotionService_SubtractItems(t *testing.T) {
	set := activeSet(entity.PromotionKindVoucherSet, nil, 10)
	items := []*entity.PromotionItem{{ID: uuid.New(), SetID: set.ID}, {ID: uuid.New(), SetID: set.ID}}

	t.Run("shortfall deletes nothing", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
		fx.promotionRepo.EXPECT().FindSetByIDForUpdate(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().LockAvailableItems(ctx, set.ID, 3).Return(items, nil)

		removed, err := fx.service.SubtractItems(ctx, entity.VoucherScope(), set.ID, 3)

		assert.Nil(t, removed)
		require.True(t, errors.Is(err, domainerrors.ErrInsufficientInventory))
		var appErr *domainerrors.BaseError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "requested 3, available 2", appErr.Details())
	})

	t.Run("deletes exactly n", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
		fx.promotionRepo.EXPECT().FindSetByIDForUpdate(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().LockAvailableItems(ctx, set.ID, 2).Return(items, nil)
		fx.promotionRepo.EXPECT().DeleteItems(ctx, []uuid.UUID{items[0].ID, items[1].ID}).Return(int64(2), nil)

		removed, err := fx.service.SubtractItems(ctx, entity.VoucherScope(), set.ID, 2)

		require.NoError(t, err)
		assert.Equal(t, items, removed)
	})

	t.Run("store cannot touch vouchers", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().PromotionRepo().Return(fx.promotionRepo)
		fx.promotionRepo.EXPECT().FindSetByIDForUpdate(ctx, set.ID).Return(set, nil)

		_, err := fx.service.SubtractItems(ctx, entity.CouponScope(uuid.New()), set.ID, 1)

		assert.True(t, errors.Is(err, domainerrors.ErrPromotionSetNotFound))
	})
}

func TestPromotionService_Claim(t *testing.T) {
	customerID := uuid.New()

	t.Run("assigns an item", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()
		set := activeSet(entity.PromotionKindVoucherSet, nil, 10)
		set.QuantityAvailable = 5
		item := heldItem(set.ID, customerID)

		fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().ClaimItem(ctx, set.ID, customerID, testNow).Return(item, nil)

		claimed, err := fx.service.Claim(ctx, customerID, set.ID)

		require.NoError(t, err)
		assert.Equal(t, item, claimed.Item)
		assert.Equal(t, int64(4), claimed.Set.QuantityAvailable)
	})

	t.Run("expired set", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()
		set := activeSet(entity.PromotionKindVoucherSet, nil, 10)
		set.ExpiredAt = testNow

		fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(set, nil)

		_, err := fx.service.Claim(ctx, customerID, set.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrPromotionNotActive))
	})

	t.Run("sold out", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()
		set := activeSet(entity.PromotionKindVoucherSet, nil, 10)

		fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().ClaimItem(ctx, set.ID, customerID, testNow).Return(nil, repository.ErrNoAvailableItem)

		_, err := fx.service.Claim(ctx, customerID, set.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrNoAvailableItem))
	})

	t.Run("second claim of the same set", func(t *testing.T) {
		fx := createTestPromotionService(t)
		ctx := context.Background()
		set := activeSet(entity.PromotionKindVoucherSet, nil, 10)

		fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(set, nil)
		fx.promotionRepo.EXPECT().ClaimItem(ctx, set.ID, customerID, testNow).Return(nil, repository.ErrAlreadyClaimed)

		_, err := fx.service.Claim(ctx, customerID, set.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrPromotionAlreadyClaimed))
	})
}

func TestPromotionService_ListClaimableSets_FiltersUnexpired(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	fx.promotionRepo.EXPECT().
		ListSets(ctx, mock.MatchedBy(func(c *repository.Criteria) bool {
			for _, p := range c.Predicates() {
				if p.Field == repository.FieldExpiredAt {
					bounds := p.Value.([2]time.Time)

					return bounds[0].Equal(testNow) && bounds[1].IsZero()
				}
			}

			return false
		}), mock.Anything).
		Return([]*entity.PromotionSet{}, int64(0), nil)

	_, err := fx.service.ListClaimableSets(ctx, entity.PromotionKindCouponSet, usecase.PageInput{})

	require.NoError(t, err)
}

func TestPromotionService_GetSet_OutsideScope(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()
	storeID := uuid.New()
	set := activeSet(entity.PromotionKindCouponSet, &storeID, 10)

	fx.promotionRepo.EXPECT().FindSetByID(ctx, set.ID).Return(set, nil)

	_, err := fx.service.GetSet(ctx, entity.CouponScope(uuid.New()), set.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrPromotionSetNotFound))
}

func TestPromotionService_ListItems_RejectsUnknownStatus(t *testing.T) {
	fx := createTestPromotionService(t)

	_, err := fx.service.ListItems(context.Background(), entity.VoucherScope(), uuid.New(), "lost", usecase.PageInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPromotionService_RetireExpired(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	fx.promotionRepo.EXPECT().DeleteAvailableItemsOfExpiredSets(ctx, testNow).Return(int64(12), nil)

	removed, err := fx.service.RetireExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
}
