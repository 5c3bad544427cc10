package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Content   string     `gorm:"type:text;not null"`
	Read      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"index:idx_notifications_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// SearchHistoryModel mirrors the 'search_histories' table.
type SearchHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_search_histories_user_created,priority:1"`
	Keyword   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"index:idx_search_histories_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (SearchHistoryModel) TableName() string {
	return "search_histories"
}
