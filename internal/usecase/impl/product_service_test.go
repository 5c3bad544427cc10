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

type productServiceFixtures struct {
	service           usecase.ProductUsecase
	txManager         *mockRepo.MockTransactionManager
	factory           *mockRepo.MockRepositoryFactory
	productRepo       *mockRepo.MockProductRepository
	reviewRepo        *mockRepo.MockReviewRepository
	searchHistoryRepo *mockRepo.MockSearchHistoryRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		factory:           mockRepo.NewMockRepositoryFactory(t),
		productRepo:       mockRepo.NewMockProductRepository(t),
		reviewRepo:        mockRepo.NewMockReviewRepository(t),
		searchHistoryRepo: mockRepo.NewMockSearchHistoryRepository(t),
	}

	svc := NewProductService(ProductServiceParams{
		TxManager:         fx.txManager,
		ProductRepo:       fx.productRepo,
		ReviewRepo:        fx.reviewRepo,
		SearchHistoryRepo: fx.searchHistoryRepo,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})
	svc.(*productService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func newTestProduct(storeID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		StoreID:  storeID,
		Name:     "Green Tea",
		Category: entity.CategoryFood,
		Price:    30,
		Quantity: 10,
	}
}

func TestProductService_ListProducts_Predicates(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	storeID := uuid.New()

	var captured *repository.Criteria
	fx.productRepo.EXPECT().
		List(ctx, mock.Anything, entity.PageRequest{Page: 0, Size: 10, SortField: "price", Direction: entity.SortAsc}).
		Run(func(_ context.Context, c *repository.Criteria, _ entity.PageRequest) { captured = c }).
		Return([]*entity.Product{newTestProduct(storeID)}, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{
		PageInput: usecase.PageInput{Filter: "price"},
		Category:  "food",
		StoreID:   &storeID,
		Keyword:   "tea",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, []repository.Predicate{
		{Field: repository.FieldCategory, Op: repository.OpEqual, Value: "FOOD"},
		{Field: repository.FieldStoreID, Op: repository.OpEqual, Value: storeID},
		{Field: repository.FieldName, Op: repository.OpContains, Value: "tea"},
	}, captured.Predicates())
}

func TestProductService_ListProducts_AllCategoryAddsNothing(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(c *repository.Criteria) bool { return len(c.Predicates()) == 0 }), mock.Anything).
		Return(nil, int64(0), nil)

	_, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{Category: "all"})

	require.NoError(t, err)
}

func TestProductService_ListProducts_UnknownCategory(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.ListProducts(context.Background(), &usecase.ProductQuery{Category: "weapons"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestProductService_GetProduct_WithRating(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New())

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().SummarizeByProduct(ctx, product.ID).Return(entity.RatingSummary{Average: 4.5, Count: 2}, nil)

	detail, err := fx.service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, detail.Product)
	assert.Equal(t, 4.5, detail.Rating.Average)
}

func TestProductService_UpdateProduct_OtherStoreIsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New())
	otherStore := uuid.New()
	price := 10.0

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, &otherStore, product.ID, &usecase.UpdateProductInput{Price: &price})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateProduct_AdminSkipsOwnership(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New())
	price := 12.5

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, nil, product.ID, &usecase.UpdateProductInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "Green Tea", updated.Name)
}

func TestProductService_UpdateProduct_RejectsNegativeStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New())
	quantity := -1

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, &product.StoreID, product.ID, &usecase.UpdateProductInput{Quantity: &quantity})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_DeleteProduct_RemovesReviewsInSameTransaction(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New())

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().DeleteByProduct(ctx, product.ID).Return(int64(3), nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, &product.StoreID, product.ID))
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, storeID, &usecase.CreateProductInput{
		Name:     "  Oolong ",
		Category: entity.CategoryFood,
		Price:    45,
		Quantity: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, storeID, product.StoreID)
	assert.Equal(t, "Oolong", product.Name)
	assert.Equal(t, testNow, product.CreatedAt)
}

func TestProductService_SearchProducts_RecordsKeyword(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.searchHistoryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(h *entity.SearchHistory) bool {
			return h.UserID == userID && h.Keyword == "tea"
		})).
		Return(nil)
	fx.productRepo.EXPECT().List(ctx, mock.Anything, mock.Anything).Return(nil, int64(0), nil)

	_, err := fx.service.SearchProducts(ctx, userID, &usecase.ProductQuery{Keyword: " tea "})

	require.NoError(t, err)
}

func TestProductService_SearchProducts_HistoryFailureDoesNotFailSearch(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.searchHistoryRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))
	fx.productRepo.EXPECT().List(ctx, mock.Anything, mock.Anything).Return(nil, int64(0), nil)

	_, err := fx.service.SearchProducts(ctx, uuid.New(), &usecase.ProductQuery{Keyword: "tea"})

	require.NoError(t, err)
}

func TestProductService_SearchHistory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	userID, entryID := uuid.New(), uuid.New()

	fx.searchHistoryRepo.EXPECT().ListLatestByUser(ctx, userID, 5).Return([]*entity.SearchHistory{{ID: entryID}}, nil)
	fx.searchHistoryRepo.EXPECT().Delete(ctx, entryID, userID).Return(repository.ErrSearchHistoryNotFound)

	entries, err := fx.service.LatestSearches(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	err = fx.service.DeleteSearch(ctx, userID, entryID)
	assert.True(t, errors.Is(err, domainerrors.ErrSearchHistoryNotFound))
}
