package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(32);not null;index"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null;check:chk_products_quantity,quantity >= 0"`
	Images      []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel mirrors the 'reviews' table. A customer reviews a product at most once.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_customer_product,priority:2"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_customer_product,priority:1"`
	CustomerName string    `gorm:"type:varchar(100)"`
	Rating       int       `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment      string    `gorm:"type:text"`
	Images       []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// FeedbackModel mirrors the 'feedbacks' table.
type FeedbackModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorRole string    `gorm:"type:varchar(32);not null"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text;not null"`
	Resolved   bool      `gorm:"not null;default:false;index"`
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
