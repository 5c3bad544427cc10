package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) Save(ctx context.Context, token *entity.RefreshToken) error {
	row := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session token issued twice")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrUserNotFound.WrapMessage("session owner does not exist")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to save session")
		}
	}

	return nil
}

func (repo *refreshTokenRepository) FindLive(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", tokenHash, now).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (repo *refreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	n, err := repo.delete(ctx, "token_hash = ?", tokenHash)
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) RevokeUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.delete(ctx, "user_id = ?", userID)
}

func (repo *refreshTokenRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	return repo.delete(ctx, "expires_at <= ?", before)
}

func (repo *refreshTokenRepository) delete(ctx context.Context, cond string, arg any) (int64, error) {
	result := repo.db.WithContext(ctx).Where(cond, arg).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete sessions")
	}

	return result.RowsAffected, nil
}
