package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPromotionSet_HasValidScope(t *testing.T) {
	t.Parallel()

	storeID := uuid.New()
	nilID := uuid.Nil

	tests := []struct {
		name string
		set  PromotionSet
		want bool
	}{
		{"voucher without store", PromotionSet{Kind: PromotionKindVoucherSet}, true},
		{"voucher with store", PromotionSet{Kind: PromotionKindVoucherSet, StoreID: &storeID}, false},
		{"coupon with store", PromotionSet{Kind: PromotionKindCouponSet, StoreID: &storeID}, true},
		{"coupon without store", PromotionSet{Kind: PromotionKindCouponSet}, false},
		{"coupon with nil store", PromotionSet{Kind: PromotionKindCouponSet, StoreID: &nilID}, false},
		{"unknown kind", PromotionSet{Kind: "GIFT"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.set.HasValidScope())
		})
	}
}

func TestPromotionSet_Window(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	set := &PromotionSet{StartAt: start, ExpiredAt: start.Add(24 * time.Hour), Percent: 15}

	assert.True(t, set.HasValidWindow())
	assert.True(t, set.HasValidPercent())
	assert.False(t, set.IsActive(start.Add(-time.Second)))
	assert.True(t, set.IsActive(start))
	assert.True(t, set.IsActive(start.Add(23*time.Hour)))
	assert.False(t, set.IsActive(set.ExpiredAt))
	assert.True(t, set.IsExpired(set.ExpiredAt))
	assert.False(t, set.IsExpired(start))

	set.Percent = 0
	assert.False(t, set.HasValidPercent())
	set.Percent = 100.5
	assert.False(t, set.HasValidPercent())

	set.ExpiredAt = start
	assert.False(t, set.HasValidWindow())
}

func TestPromotionScope_Covers(t *testing.T) {
	t.Parallel()

	storeA := uuid.New()
	storeB := uuid.New()
	voucher := &PromotionSet{Kind: PromotionKindVoucherSet}
	couponA := &PromotionSet{Kind: PromotionKindCouponSet, StoreID: &storeA}

	assert.True(t, VoucherScope().Covers(voucher))
	assert.False(t, VoucherScope().Covers(couponA))
	assert.True(t, CouponScope(storeA).Covers(couponA))
	assert.False(t, CouponScope(storeB).Covers(couponA))
	assert.False(t, CouponScope(storeA).Covers(voucher))
	assert.False(t, VoucherScope().Covers(nil))
}

func TestPromotionItem_State(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	items := NewPromotionItems(uuid.New(), 3, time.Now())
	assert.Len(t, items, 3)
	for _, item := range items {
		assert.True(t, item.IsAvailable())
		assert.False(t, item.IsHeldBy(customerID))
	}

	item := items[0]
	item.CustomerID = &customerID
	assert.False(t, item.IsAvailable())
	assert.True(t, item.IsHeldBy(customerID))
	assert.False(t, item.IsHeldBy(uuid.New()))

	item.Used = true
	assert.False(t, item.IsHeldBy(customerID))
}
