package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSearchHistoryNotFound is returned when a search entry is not found for the user.
var ErrSearchHistoryNotFound = errors.New("search history not found")

// SearchHistoryRepository persists product search keywords.
type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *entity.SearchHistory) error

	// ListLatestByUser returns the newest entries first, at most limit of them.
	ListLatestByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchHistory, error)

	// Delete removes the entry if it belongs to userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
