package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Parallel()

	now := time.Now()
	u := NewCustomer("Ana", "ana@example.com", "hash", now)

	assert.Equal(t, RoleCustomer, u.Role)
	assert.True(t, u.HasConsistentProfile())
	require.NotNil(t, u.Customer.Cart)
	assert.Equal(t, u.ID, u.Customer.UserID)
	assert.Equal(t, u.ID, u.Customer.Cart.CustomerID)
	assert.Empty(t, u.Customer.Addresses)
}

func TestNewStoreAndDeliveryPartner(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := NewStore("Shop", "shop@example.com", "hash", StoreProfile{City: "Hanoi"}, now)
	assert.Equal(t, RoleStore, store.Role)
	assert.True(t, store.HasConsistentProfile())
	assert.Equal(t, store.ID, store.Store.UserID)
	assert.Equal(t, "Hanoi", store.Store.City)

	partner := NewDeliveryPartner("Bo", "bo@example.com", "hash", DeliveryPartnerProfile{VehiclePlate: "29A-12345"}, now)
	assert.Equal(t, RoleDeliveryPartner, partner.Role)
	assert.True(t, partner.HasConsistentProfile())
}

func TestUser_HasConsistentProfile_Mismatch(t *testing.T) {
	t.Parallel()

	u := NewCustomer("Ana", "ana@example.com", "hash", time.Now())
	u.Store = &StoreProfile{}
	assert.False(t, u.HasConsistentProfile())

	admin := &User{Role: RoleAdmin}
	assert.True(t, admin.HasConsistentProfile())
	admin.Customer = &CustomerProfile{}
	assert.False(t, admin.HasConsistentProfile())

	assert.False(t, (&User{Role: "GUEST"}).HasConsistentProfile())
}

func TestRole(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleCustomer.IsSelfRegistrable())
	assert.True(t, RoleStore.IsSelfRegistrable())
	assert.False(t, RoleAdmin.IsSelfRegistrable())
	assert.False(t, RoleDeliveryPartner.IsSelfRegistrable())
	assert.False(t, Role("GUEST").IsValid())
	assert.True(t, Roles{RoleAdmin, RoleStore}.Contains(RoleStore))
	assert.False(t, Roles{RoleAdmin}.Contains(RoleCustomer))
}
