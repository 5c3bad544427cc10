package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. order_code carries the unique index
// targeted by ON CONFLICT when a new order is inserted.
type OrderModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderCode         string     `gorm:"type:varchar(6);not null;uniqueIndex"`
	Status            string     `gorm:"type:varchar(32);not null;index"`
	StoreID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_store_created,priority:1"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerName      string     `gorm:"type:varchar(100);not null"`
	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid"`
	ShippingAddress   string     `gorm:"type:varchar(512);not null"`
	Subtotal          float64    `gorm:"type:numeric(12,2);not null"`
	Discount          float64    `gorm:"type:numeric(12,2);not null"`
	Total             float64    `gorm:"type:numeric(12,2);not null"`
	VoucherItemID     *uuid.UUID `gorm:"type:uuid"`
	CouponItemID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"index:idx_orders_store_created,priority:2"`
	UpdatedAt         time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. product_id is cleared when
// the product is deleted; name and price stay as purchased.
type OrderItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductName string     `gorm:"type:varchar(255);not null"`
	UnitPrice   float64    `gorm:"type:numeric(12,2);not null"`
	Quantity    int        `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
