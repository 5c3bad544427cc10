package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var notificationColumns = columnMap{
	repository.FieldCreatedAt: "created_at",
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// inbox scopes a query to one user's notifications.
func (repo *notificationRepository) inbox(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.NotificationModel{}).Where("user_id = ?", userID)
}

func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	row := notificationRow(n)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("notification is missing a required field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "insert notification")
	}
	n.CreatedAt = row.CreatedAt

	return nil
}

// ListByUser is newest first unless the page names a sort field.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page entity.PageRequest) ([]*entity.Notification, int64, error) {
	if page.SortField == "" {
		page.Direction = entity.SortDesc
	}

	query := repo.inbox(ctx, userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	rows, total, err := findPage[model.NotificationModel](query, page, notificationColumns, repository.FieldCreatedAt)
	if err != nil {
		return nil, 0, err
	}

	return mapRows(rows, notificationEntity), total, nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := repo.inbox(ctx, userID).Where("read = ?", false).Count(&n).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "count unread notifications")
	}

	return n, nil
}

// MarkRead is idempotent for an already read notification. Another user's
// notification is reported as not found.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.inbox(ctx, userID).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.inbox(ctx, userID).Where("read = ?", false).Update("read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "mark notifications read")
	}

	return result.RowsAffected, nil
}

func notificationEntity(row *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		OrderID:   row.OrderID,
		Title:     row.Title,
		Content:   row.Content,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}
}

func notificationRow(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		OrderID:   n.OrderID,
		Title:     n.Title,
		Content:   n.Content,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
