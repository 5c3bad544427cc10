package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of any role. Exactly one profile pointer is set and it
// matches Role; admins carry none.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Name            string
	AvatarURL       string
	Role            Role
	Locked          bool
	Customer        *CustomerProfile
	Store           *StoreProfile
	DeliveryPartner *DeliveryPartnerProfile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustomerProfile holds data specific to the CUSTOMER role.
type CustomerProfile struct {
	UserID      uuid.UUID
	PhoneNumber string
	Addresses   []string
	Cart        *Cart
	UpdatedAt   time.Time
}

// Cart is created empty when a customer registers.
type Cart struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	CreatedAt  time.Time
}

// StoreProfile holds data specific to the STORE role.
type StoreProfile struct {
	UserID      uuid.UUID
	Description string
	Address     string
	City        string
	UpdatedAt   time.Time
}

// DeliveryPartnerProfile holds data specific to the DELIVERY_PARTNER role.
type DeliveryPartnerProfile struct {
	UserID       uuid.UUID
	PhoneNumber  string
	VehiclePlate string
	UpdatedAt    time.Time
}

// NewCustomer builds a customer account with an empty cart.
func NewCustomer(name, email, passwordHash string, now time.Time) *User {
	id := uuid.New()

	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         RoleCustomer,
		Customer: &CustomerProfile{
			UserID:    id,
			Addresses: []string{},
			Cart:      &Cart{ID: uuid.New(), CustomerID: id, CreatedAt: now},
			UpdatedAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewStore builds a store account.
func NewStore(name, email, passwordHash string, profile StoreProfile, now time.Time) *User {
	id := uuid.New()
	profile.UserID = id
	profile.UpdatedAt = now

	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         RoleStore,
		Store:        &profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewDeliveryPartner builds a delivery partner account.
func NewDeliveryPartner(name, email, passwordHash string, profile DeliveryPartnerProfile, now time.Time) *User {
	id := uuid.New()
	profile.UserID = id
	profile.UpdatedAt = now

	return &User{
		ID:              id,
		Email:           email,
		PasswordHash:    passwordHash,
		Name:            name,
		Role:            RoleDeliveryPartner,
		DeliveryPartner: &profile,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasConsistentProfile reports whether the profile payload matches the role.
func (u *User) HasConsistentProfile() bool {
	switch u.Role {
	case RoleCustomer:
		return u.Customer != nil && u.Store == nil && u.DeliveryPartner == nil
	case RoleStore:
		return u.Store != nil && u.Customer == nil && u.DeliveryPartner == nil
	case RoleDeliveryPartner:
		return u.DeliveryPartner != nil && u.Customer == nil && u.Store == nil
	case RoleAdmin:
		return u.Customer == nil && u.Store == nil && u.DeliveryPartner == nil
	default:
		return false
	}
}

// UserStatusFilter narrows user listings by lock state.
type UserStatusFilter string

const (
	UserStatusAll    UserStatusFilter = "all"
	UserStatusLocked UserStatusFilter = "locked"
	UserStatusActive UserStatusFilter = "active"
)

// IsValid checks if the filter is a known value.
func (f UserStatusFilter) IsValid() bool {
	switch f {
	case UserStatusAll, UserStatusLocked, UserStatusActive:
		return true
	default:
		return false
	}
}
