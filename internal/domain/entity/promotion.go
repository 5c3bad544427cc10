package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromotionKind distinguishes global vouchers from store coupons.
type PromotionKind string

const (
	PromotionKindVoucherSet PromotionKind = "VOUCHER_SET"
	PromotionKindCouponSet  PromotionKind = "COUPON_SET"
)

// IsValid checks if the PromotionKind is a known value.
func (k PromotionKind) IsValid() bool {
	return k == PromotionKindVoucherSet || k == PromotionKindCouponSet
}

// PromotionSet is a batch of identical discount items.
// A VOUCHER_SET has no store; a COUPON_SET always belongs to one.
type PromotionSet struct {
	ID          uuid.UUID
	Kind        PromotionKind
	Code        string
	Description string
	Percent     float64
	StoreID     *uuid.UUID
	StartAt     time.Time
	ExpiredAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by reads only.
	QuantityAvailable int64
	QuantityTotal     int64
}

// HasValidScope reports whether the store reference matches the kind.
func (s *PromotionSet) HasValidScope() bool {
	switch s.Kind {
	case PromotionKindVoucherSet:
		return s.StoreID == nil
	case PromotionKindCouponSet:
		return s.StoreID != nil && *s.StoreID != uuid.Nil
	default:
		return false
	}
}

// HasValidPercent reports whether the discount is within (0, 100].
func (s *PromotionSet) HasValidPercent() bool {
	return s.Percent > 0 && s.Percent <= 100
}

// HasValidWindow reports whether the set expires after it starts.
func (s *PromotionSet) HasValidWindow() bool {
	return s.ExpiredAt.After(s.StartAt)
}

// IsActive reports whether items of the set can be claimed or redeemed at now.
func (s *PromotionSet) IsActive(now time.Time) bool {
	return !now.Before(s.StartAt) && now.Before(s.ExpiredAt)
}

// IsExpired reports whether the set has passed its expiry at now.
func (s *PromotionSet) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiredAt)
}

// PromotionScope identifies who is managing promotion sets: admins manage
// vouchers, a store manages its own coupons.
type PromotionScope struct {
	Kind    PromotionKind
	StoreID *uuid.UUID
}

// VoucherScope is the admin scope.
func VoucherScope() PromotionScope {
	return PromotionScope{Kind: PromotionKindVoucherSet}
}

// CouponScope is the scope of one store.
func CouponScope(storeID uuid.UUID) PromotionScope {
	return PromotionScope{Kind: PromotionKindCouponSet, StoreID: &storeID}
}

// Covers reports whether the set belongs to the scope.
func (sc PromotionScope) Covers(set *PromotionSet) bool {
	if set == nil || set.Kind != sc.Kind {
		return false
	}
	if sc.StoreID == nil {
		return set.StoreID == nil
	}

	return set.StoreID != nil && *set.StoreID == *sc.StoreID
}

// PromotionItem is one redeemable unit of a set. It is available while it has
// no customer and is unused.
type PromotionItem struct {
	ID         uuid.UUID
	SetID      uuid.UUID
	CustomerID *uuid.UUID
	Used       bool
	ClaimedAt  *time.Time
	UsedAt     *time.Time
	CreatedAt  time.Time
}

// IsAvailable reports whether the item can still be claimed.
func (i *PromotionItem) IsAvailable() bool {
	return i.CustomerID == nil && !i.Used
}

// IsHeldBy reports whether the item was claimed by customerID and not yet used.
func (i *PromotionItem) IsHeldBy(customerID uuid.UUID) bool {
	return i.CustomerID != nil && *i.CustomerID == customerID && !i.Used
}

// NewPromotionItems builds n unused, unassigned items stamped with now.
func NewPromotionItems(setID uuid.UUID, n int, now time.Time) []*PromotionItem {
	items := make([]*PromotionItem, 0, n)
	for range n {
		items = append(items, &PromotionItem{
			ID:        uuid.New(),
			SetID:     setID,
			CreatedAt: now,
		})
	}

	return items
}

// PromotionItemStatus filters item listings.
type PromotionItemStatus string

const (
	PromotionItemStatusAll       PromotionItemStatus = "all"
	PromotionItemStatusAvailable PromotionItemStatus = "available"
	PromotionItemStatusClaimed   PromotionItemStatus = "claimed"
	PromotionItemStatusUsed      PromotionItemStatus = "used"
)

// IsValid checks if the filter is a known value.
func (s PromotionItemStatus) IsValid() bool {
	switch s {
	case PromotionItemStatusAll, PromotionItemStatusAvailable, PromotionItemStatusClaimed, PromotionItemStatusUsed:
		return true
	default:
		return false
	}
}

// ClaimedPromotion is an item a customer holds together with its set.
type ClaimedPromotion struct {
	Item *PromotionItem
	Set  *PromotionSet
}
