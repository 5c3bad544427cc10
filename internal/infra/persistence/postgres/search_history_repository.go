package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchHistoryRepository implements the repository.SearchHistoryRepository interface.
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository is the constructor for searchHistoryRepository.
func NewSearchHistoryRepository(db *gorm.DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{
		db: db,
	}
}

func (repo *searchHistoryRepository) Create(ctx context.Context, entry *entity.SearchHistory) error {
	entryM := &model.SearchHistoryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Keyword:   entry.Keyword,
		CreatedAt: entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create search history")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *searchHistoryRepository) ListLatestByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchHistory, error) {
	var entryModels []*model.SearchHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	entries := make([]*entity.SearchHistory, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.SearchHistory{
			ID:        entryM.ID,
			UserID:    entryM.UserID,
			Keyword:   entryM.Keyword,
			CreatedAt: entryM.CreatedAt,
		})
	}

	return entries, nil
}

func (repo *searchHistoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SearchHistoryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete search history")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSearchHistoryNotFound
	}

	return nil
}
