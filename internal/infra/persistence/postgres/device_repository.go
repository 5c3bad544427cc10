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
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) Register(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	row := deviceRow(device)

	var stored model.DeviceModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A token follows the handset, so a re-login hands it to the new account.
		if err := tx.
			Where("fcm_token = ? AND NOT (user_id = ? AND device_id = ?)", row.FCMToken, row.UserID, row.DeviceID).
			Delete(&model.DeviceModel{}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "last_seen_at", "updated_at"}),
		}).Create(row).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND device_id = ?", row.UserID, row.DeviceID).First(&stored).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("device owner does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	return deviceEntity(&stored), nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.DeviceModel
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return deviceEntity(&row), nil
}

func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active")
	}

	var rows []*model.DeviceModel
	if err := query.Order("last_seen_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return mapRows(rows, deviceEntity), nil
}

func (repo *deviceRepository) ReplaceToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	now := time.Now()
	err := updateDevice(repo.db.WithContext(ctx).Where("id = ?", id), map[string]any{
		"fcm_token":    fcmToken,
		"is_active":    true,
		"last_seen_at": now,
		"updated_at":   now,
	})
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrConflict.WithDetails("fcm token is registered to another device")
	}

	return err
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return updateDevice(repo.db.WithContext(ctx).Where("id = ?", id), map[string]any{
		"is_active":  false,
		"updated_at": time.Now(),
	})
}

func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token IN ? AND is_active", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate tokens")
	}

	return result.RowsAffected, nil
}

// updateDevice applies values to the one device selected by query.
func updateDevice(query *gorm.DB, values map[string]any) error {
	result := query.Model(&model.DeviceModel{}).Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func deviceEntity(row *model.DeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:         row.ID,
		UserID:     row.UserID,
		DeviceID:   row.DeviceID,
		FCMToken:   row.FCMToken,
		Platform:   entity.DevicePlatform(row.Platform),
		IsActive:   row.IsActive,
		LastSeenAt: row.LastSeenAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func deviceRow(d *entity.UserDevice) *model.DeviceModel {
	return &model.DeviceModel{
		ID:         d.ID,
		UserID:     d.UserID,
		DeviceID:   d.DeviceID,
		FCMToken:   d.FCMToken,
		Platform:   string(d.Platform),
		IsActive:   d.IsActive,
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
