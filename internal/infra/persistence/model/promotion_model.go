package model

import (
	"time"

	"github.com/google/uuid"
)

// PromotionSetModel mirrors the 'promotion_sets' table. store_id is NULL for
// voucher sets.
type PromotionSetModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(16);not null;index"`
	Code        string     `gorm:"type:varchar(64);not null"`
	Description string     `gorm:"type:text"`
	Percent     float64    `gorm:"type:numeric(5,2);not null;check:chk_promotion_sets_percent,percent > 0 AND percent <= 100"`
	StoreID     *uuid.UUID `gorm:"type:uuid;index"`
	StartAt     time.Time  `gorm:"not null"`
	ExpiredAt   time.Time  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []PromotionItemModel `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionSetModel) TableName() string {
	return "promotion_sets"
}

// PromotionItemModel mirrors the 'promotion_items' table. The partial unique
// index lets a customer hold at most one item of a set.
type PromotionItemModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SetID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_promotion_items_set_created,priority:1;uniqueIndex:idx_promotion_items_set_customer,priority:1,where:customer_id IS NOT NULL"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_promotion_items_set_customer,priority:2,where:customer_id IS NOT NULL"`
	Used       bool       `gorm:"not null;default:false"`
	ClaimedAt  *time.Time
	UsedAt     *time.Time
	CreatedAt  time.Time `gorm:"index:idx_promotion_items_set_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionItemModel) TableName() string {
	return "promotion_items"
}
