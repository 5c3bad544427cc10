package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a decrement would make stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity only if enough stock remains.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// List returns one page of products matching the criteria and the total count.
	// Supported fields: name, category, storeId, price, quantity, createdAt, updatedAt.
	List(ctx context.Context, criteria *Criteria, page entity.PageRequest) ([]*entity.Product, int64, error)
}
