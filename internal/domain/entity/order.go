package entity

import (
	"crypto/rand"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a stage of the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// orderTransitions lists the statuses reachable from each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusReady},
	OrderStatusReady:      {OrderStatusInProgress, OrderStatusDelivering},
	OrderStatusInProgress: {OrderStatusDelivering},
	OrderStatusDelivering: {OrderStatusDelivered},
	OrderStatusDelivered:  {},
}

// AllOrderStatuses returns every status in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusReady,
		OrderStatusInProgress,
		OrderStatusDelivering,
		OrderStatusDelivered,
	}
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// CanTransitionTo reports whether a store may move an order from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsFinal reports whether no further transition exists.
func (s OrderStatus) IsFinal() bool {
	return len(orderTransitions[s]) == 0
}

const (
	// OrderCodeLength is the number of characters of a generated order code.
	OrderCodeLength   = 6
	orderCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// NewOrderCode returns a random code of OrderCodeLength characters drawn from [0-9A-Za-z].
func NewOrderCode() (string, error) {
	limit := big.NewInt(int64(len(orderCodeAlphabet)))
	code := make([]byte, OrderCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = orderCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}

// IsOrderCode reports whether s has the shape of a generated order code.
func IsOrderCode(s string) bool {
	if len(s) != OrderCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}

	return true
}

// Order is a purchase from a single store.
type Order struct {
	ID                uuid.UUID
	Code              string
	Status            OrderStatus
	StoreID           uuid.UUID
	CustomerID        uuid.UUID
	CustomerName      string
	DeliveryPartnerID *uuid.UUID
	ShippingAddress   string
	Items             []*OrderItem
	Subtotal          float64
	Discount          float64
	Total             float64
	VoucherItemID     *uuid.UUID
	CouponItemID      *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem snapshots the product name and price at purchase time.
// ProductID becomes nil once the product is deleted.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	UnitPrice   float64
	Quantity    int
}

// LineTotal is the unit price times the quantity.
func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// ApplyPricing computes subtotal, discount and total. Percentages apply one
// after the other, voucher first.
func (o *Order) ApplyPricing(voucherPercent, couponPercent float64) {
	subtotal := 0.0
	for _, item := range o.Items {
		subtotal += item.LineTotal()
	}

	total := subtotal * (1 - voucherPercent/100) * (1 - couponPercent/100)
	o.Subtotal = RoundCents(subtotal)
	o.Total = RoundCents(total)
	o.Discount = RoundCents(o.Subtotal - o.Total)
}

// RoundCents rounds a monetary amount to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OrderCount is the per-status breakdown returned to stores.
type OrderCount struct {
	Total    int64
	ByStatus map[OrderStatus]int64
}
