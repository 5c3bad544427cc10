package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one product of a new order.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data a customer submits to place an order.
// VoucherItemID and CouponItemID reference promotion items the customer holds.
type CreateOrderInput struct {
	Items           []OrderLineInput
	ShippingAddress string
	VoucherItemID   *uuid.UUID
	CouponItemID    *uuid.UUID
}

// UpdateOrderStatusInput moves an order along its lifecycle.
type UpdateOrderStatusInput struct {
	OrderID           uuid.UUID
	Status            entity.OrderStatus
	DeliveryPartnerID *uuid.UUID
}

// OrderQuery narrows an order listing. Status "all" or empty disables the
// status filter.
type OrderQuery struct {
	PageInput
	DateRangeInput
	Status       string
	CustomerName string
}

// OrderUsecase defines the order lifecycle and order reads per role.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, storeID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	ListStoreOrders(ctx context.Context, storeID uuid.UUID, query *OrderQuery) (*entity.Page[*entity.Order], error)
	CountStoreOrders(ctx context.Context, storeID uuid.UUID, dates DateRangeInput) (*entity.OrderCount, error)
	GetStoreOrder(ctx context.Context, storeID, orderID uuid.UUID) (*entity.Order, error)
	GetStoreOrderByCode(ctx context.Context, storeID uuid.UUID, code string) (*entity.Order, error)

	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page PageInput) (*entity.Page[*entity.Order], error)
	GetCustomerOrderByCode(ctx context.Context, customerID uuid.UUID, code string) (*entity.Order, error)
	// GetCustomerOrderQR renders the order code of one of the customer's orders as a PNG.
	GetCustomerOrderQR(ctx context.Context, customerID uuid.UUID, code string) ([]byte, error)

	ListAllOrders(ctx context.Context, query *OrderQuery) (*entity.Page[*entity.Order], error)
}
