package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// PromotionSetInput defines the settings of a voucher or coupon set. Quantity
// is only read on creation.
type PromotionSetInput struct {
	Code        string
	Description string
	Percent     float64
	Quantity    int
	StartAt     time.Time
	ExpiredAt   time.Time
}

// PromotionUsecase manages voucher and coupon sets and their items.
//
// Management operations run inside a PromotionScope: admins act on voucher
// sets, a store on its own coupon sets. A set outside the scope is reported
// as not found.
type PromotionUsecase interface {
	CreateSet(ctx context.Context, scope entity.PromotionScope, input *PromotionSetInput) (*entity.PromotionSet, error)
	UpdateSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, input *PromotionSetInput) (*entity.PromotionSet, error)
	GetSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID) (*entity.PromotionSet, error)
	ListSets(ctx context.Context, scope entity.PromotionScope, page PageInput) (*entity.Page[*entity.PromotionSet], error)
	DeleteSet(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID) error

	AddItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, n int) (*entity.PromotionSet, error)
	// SubtractItems removes n available items, oldest first, or nothing at all.
	SubtractItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, n int) ([]*entity.PromotionItem, error)
	ListItems(ctx context.Context, scope entity.PromotionScope, setID uuid.UUID, status entity.PromotionItemStatus, page PageInput) (*entity.Page[*entity.PromotionItem], error)
	DeleteItem(ctx context.Context, scope entity.PromotionScope, itemID uuid.UUID) error

	// ListClaimableSets lists the unexpired sets of a kind customers can claim from.
	ListClaimableSets(ctx context.Context, kind entity.PromotionKind, page PageInput) (*entity.Page[*entity.PromotionSet], error)
	Claim(ctx context.Context, customerID, setID uuid.UUID) (*entity.ClaimedPromotion, error)
	ListCustomerPromotions(ctx context.Context, customerID uuid.UUID, kind *entity.PromotionKind) ([]*entity.ClaimedPromotion, error)

	// RetireExpired deletes the unassigned items of every expired set.
	RetireExpired(ctx context.Context) (int64, error)
}
