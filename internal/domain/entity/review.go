package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a product. A customer reviews a product at most once.
type Review struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Rating       int
	Comment      string
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasValidRating reports whether the rating is within bounds.
func (r *Review) HasValidRating() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
