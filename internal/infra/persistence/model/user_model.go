package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Emails are stored lower-cased so the
// unique index is case-insensitive.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100);not null;index"`
	AvatarURL    string    `gorm:"type:varchar(512)"`
	Role         string    `gorm:"type:varchar(32);not null;index"`
	Locked       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CustomerProfile        *CustomerProfileModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StoreProfile           *StoreProfileModel           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DeliveryPartnerProfile *DeliveryPartnerProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customer_profiles' table.
type CustomerProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `gorm:"type:varchar(32)"`
	Addresses   []string  `gorm:"type:jsonb;serializer:json"`
	UpdatedAt   time.Time

	Cart *CartModel `gorm:"foreignKey:CustomerID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// CartModel mirrors the 'carts' table; one per customer.
type CartModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// StoreProfileModel mirrors the 'store_profiles' table.
type StoreProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100)"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreProfileModel) TableName() string {
	return "store_profiles"
}

// DeliveryPartnerProfileModel mirrors the 'delivery_partner_profiles' table.
type DeliveryPartnerProfileModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	VehiclePlate string    `gorm:"type:varchar(32)"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPartnerProfileModel) TableName() string {
	return "delivery_partner_profiles"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the token hash is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
