package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel maps the devices table. A client device id is registered once
// per user; the FCM token can only live on one row.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_user_device"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_user_device"`
	FCMToken   string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	LastSeenAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
