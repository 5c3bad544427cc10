package impl

import (
	"context"
	"log/slog"
	"strings"
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

const fallbackSearchHistoryLimit = 10

// productService implements the ProductUsecase interface.
type productService struct {
	txManager          repository.TransactionManager
	productRepo        repository.ProductRepository
	reviewRepo         repository.ReviewRepository
	searchHistoryRepo  repository.SearchHistoryRepository
	pager              pager
	searchHistoryLimit int
	logger             *slog.Logger
	now                func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	ProductRepo       repository.ProductRepository
	ReviewRepo        repository.ReviewRepository
	SearchHistoryRepo repository.SearchHistoryRepository
	Config            *config.Config
	Logger            *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	limit := fallbackSearchHistoryLimit
	if params.Config != nil && params.Config.SearchHistory != nil && params.Config.SearchHistory.Limit > 0 {
		limit = params.Config.SearchHistory.Limit
	}

	return &productService{
		txManager:          params.TxManager,
		productRepo:        params.ProductRepo,
		reviewRepo:         params.ReviewRepo,
		searchHistoryRepo:  params.SearchHistoryRepo,
		pager:              newPager(params.Config),
		searchHistoryLimit: limit,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts builds the catalog predicates explicitly: category and store
// match exactly, the keyword is a case-insensitive substring of the name.
func (srv *productService) ListProducts(ctx context.Context, query *usecase.ProductQuery) (*entity.Page[*entity.Product], error) {
	page, err := srv.pager.request(query.PageInput)
	if err != nil {
		return nil, err
	}

	criteria := repository.NewCriteria()
	if isFilterSet(query.Category) {
		category := entity.Category(strings.ToUpper(strings.TrimSpace(query.Category)))
		if !category.IsValid() {
			return nil, domainerrors.ErrInvalidCategory.WithDetailsf("unknown category %q", query.Category)
		}
		criteria.Equal(repository.FieldCategory, string(category))
	}
	if query.StoreID != nil {
		criteria.Equal(repository.FieldStoreID, *query.StoreID)
	}
	criteria.Contains(repository.FieldName, query.Keyword)

	products, total, err := srv.productRepo.List(ctx, criteria, page)
	if err != nil {
		return nil, translateListError(err, "failed to list products")
	}

	return entity.NewPage(products, page, total), nil
}

// GetProduct returns the product with its rating average and count.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetail, error) {
	product, err := srv.findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	rating, err := srv.reviewRepo.SummarizeByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return &usecase.ProductDetail{Product: product, Rating: rating}, nil
}

func (srv *productService) findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "find product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// findScopedProduct hides products of other stores behind not found.
func (srv *productService) findScopedProduct(ctx context.Context, productRepo repository.ProductRepository, storeID *uuid.UUID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productRepo, productID)
	if err != nil {
		return nil, err
	}
	if storeID != nil && product.StoreID != *storeID {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product belongs to another store")
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, storeID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	now := srv.now()
	product := &entity.Product{
		ID:          uuid.New(),
		StoreID:     storeID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("storeID", storeID))

	return product, nil
}

func validateProduct(product *entity.Product) error {
	switch {
	case product.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !product.Category.IsValid():
		return domainerrors.ErrInvalidCategory.WithDetailsf("unknown category %q", product.Category)
	case product.Price < 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case product.Quantity < 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	return nil
}

// UpdateProduct applies a partial update. A nil storeID skips the ownership check.
func (srv *productService) UpdateProduct(ctx context.Context, storeID *uuid.UUID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findScopedProduct(ctx, srv.productRepo, storeID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	product.UpdatedAt = srv.now()

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes the product and its reviews in one transaction.
func (srv *productService) DeleteProduct(ctx context.Context, storeID *uuid.UUID, productID uuid.UUID) error {
	var removedReviews int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := srv.findScopedProduct(ctx, productRepo, storeID, productID); err != nil {
			return err
		}

		var err error
		if removedReviews, err = repoFactory.ReviewRepo().DeleteByProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}

		if err := productRepo.Delete(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "delete product")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete product transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Int64("reviews", removedReviews))

	return nil
}

// SearchProducts records the keyword, then lists. A failed history write is
// logged and does not fail the search.
func (srv *productService) SearchProducts(ctx context.Context, userID uuid.UUID, query *usecase.ProductQuery) (*entity.Page[*entity.Product], error) {
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		entry := &entity.SearchHistory{
			ID:        uuid.New(),
			UserID:    userID,
			Keyword:   keyword,
			CreatedAt: srv.now(),
		}
		if err := srv.searchHistoryRepo.Create(ctx, entry); err != nil {
			srv.log(ctx).Warn("Failed to record search history", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	return srv.ListProducts(ctx, query)
}

func (srv *productService) LatestSearches(ctx context.Context, userID uuid.UUID) ([]*entity.SearchHistory, error) {
	entries, err := srv.searchHistoryRepo.ListLatestByUser(ctx, userID, srv.searchHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	return entries, nil
}

func (srv *productService) DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error {
	if err := srv.searchHistoryRepo.Delete(ctx, searchID, userID); err != nil {
		if errors.Is(err, repository.ErrSearchHistoryNotFound) {
			return errors.Wrap(domainerrors.ErrSearchHistoryNotFound, "delete search history")
		}

		return errors.Wrap(err, "failed to delete search history")
	}

	return nil
}
