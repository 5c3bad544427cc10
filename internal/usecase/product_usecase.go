package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductQuery narrows a catalog listing. Category "all" or empty disables
// the category filter; Keyword matches product names case-insensitively.
type ProductQuery struct {
	PageInput
	Category string
	StoreID  *uuid.UUID
	Keyword  string
}

// CreateProductInput defines a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Category    entity.Category
	Price       float64
	Quantity    int
	Images      []string
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *entity.Category
	Price       *float64
	Quantity    *int
	Images      []string
}

// ProductDetail is a product with its rating summary.
type ProductDetail struct {
	Product *entity.Product
	Rating  entity.RatingSummary
}

// ProductUsecase defines catalog and product search operations.
//
// Operations taking a storeID pointer scope the product to that store; a nil
// storeID is the unrestricted admin path.
type ProductUsecase interface {
	ListProducts(ctx context.Context, query *ProductQuery) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetail, error)

	CreateProduct(ctx context.Context, storeID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, storeID *uuid.UUID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	// DeleteProduct removes the product and its reviews atomically.
	DeleteProduct(ctx context.Context, storeID *uuid.UUID, productID uuid.UUID) error

	// SearchProducts records the keyword in the user's search history, then lists.
	SearchProducts(ctx context.Context, userID uuid.UUID, query *ProductQuery) (*entity.Page[*entity.Product], error)
	LatestSearches(ctx context.Context, userID uuid.UUID) ([]*entity.SearchHistory, error)
	DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error
}
