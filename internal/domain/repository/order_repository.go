package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// TryCreate inserts the order unless its code is already taken. It reports
	// false without error on a code collision so the caller can retry.
	TryCreate(ctx context.Context, order *entity.Order) (bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	FindByCode(ctx context.Context, code string) (*entity.Order, error)

	// UpdateStatus sets the status and, when non-nil, the delivery partner.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, deliveryPartnerID *uuid.UUID, now time.Time) error

	// List returns one page of orders matching the criteria and the total count.
	// Supported fields: storeId, customerId, status, code, customerName, createdAt, total.
	List(ctx context.Context, criteria *Criteria, page entity.PageRequest) ([]*entity.Order, int64, error)

	// CountByStatus groups the orders matching the criteria by status.
	CountByStatus(ctx context.Context, criteria *Criteria) (map[entity.OrderStatus]int64, error)
}
