package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusReady, true},
		{OrderStatusPending, OrderStatusDelivering, false},
		{OrderStatusReady, OrderStatusInProgress, true},
		{OrderStatusReady, OrderStatusDelivering, true},
		{OrderStatusReady, OrderStatusPending, false},
		{OrderStatusInProgress, OrderStatusDelivering, true},
		{OrderStatusInProgress, OrderStatusDelivered, false},
		{OrderStatusDelivering, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusDelivered, false},
		{OrderStatus("CANCELLED"), OrderStatusReady, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValidAndFinal(t *testing.T) {
	t.Parallel()

	for _, s := range AllOrderStatuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("pending").IsValid())
	assert.True(t, OrderStatusDelivered.IsFinal())
	assert.False(t, OrderStatusReady.IsFinal())
}

func TestNewOrderCode(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 200 {
		code, err := NewOrderCode()
		require.NoError(t, err)
		assert.Len(t, code, OrderCodeLength)
		assert.True(t, IsOrderCode(code), code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestIsOrderCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOrderCode("a1B2c3"))
	assert.False(t, IsOrderCode("a1B2c"))
	assert.False(t, IsOrderCode("a1B2c3d"))
	assert.False(t, IsOrderCode("a1-2c3"))
	assert.False(t, IsOrderCode(""))
}

func TestOrder_ApplyPricing(t *testing.T) {
	t.Parallel()

	newOrder := func() *Order {
		return &Order{Items: []*OrderItem{
			{UnitPrice: 10, Quantity: 3},
			{UnitPrice: 5.5, Quantity: 2},
		}}
	}

	t.Run("no promotions", func(t *testing.T) {
		o := newOrder()
		o.ApplyPricing(0, 0)
		assert.Equal(t, 41.0, o.Subtotal)
		assert.Equal(t, 0.0, o.Discount)
		assert.Equal(t, 41.0, o.Total)
	})

	t.Run("voucher then coupon", func(t *testing.T) {
		o := newOrder()
		o.ApplyPricing(50, 50)
		assert.Equal(t, 41.0, o.Subtotal)
		assert.Equal(t, 10.25, o.Total)
		assert.Equal(t, 30.75, o.Discount)
	})

	t.Run("full discount", func(t *testing.T) {
		o := newOrder()
		o.ApplyPricing(100, 0)
		assert.Equal(t, 0.0, o.Total)
		assert.Equal(t, 41.0, o.Discount)
	})
}
