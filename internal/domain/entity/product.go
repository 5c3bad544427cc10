package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products in the catalog.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryFashion     Category = "FASHION"
	CategoryHome        Category = "HOME"
	CategoryBeauty      Category = "BEAUTY"
	CategorySports      Category = "SPORTS"
	CategoryBooks       Category = "BOOKS"
	CategoryToys        Category = "TOYS"
	CategoryFood        Category = "FOOD"
	CategoryOther       Category = "OTHER"
)

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryHome, CategoryBeauty,
		CategorySports, CategoryBooks, CategoryToys, CategoryFood, CategoryOther:
		return true
	default:
		return false
	}
}

// Product is an item a store sells. Quantity is the remaining stock.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Name        string
	Description string
	Category    Category
	Price       float64
	Quantity    int
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RatingSummary aggregates the reviews of one product.
type RatingSummary struct {
	Average float64
	Count   int64
}
