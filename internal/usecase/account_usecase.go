package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAccountInput is a partial update. Nil fields are left untouched and
// profile fields that do not apply to the account's role are ignored.
type UpdateAccountInput struct {
	Name         *string
	AvatarURL    *string
	PhoneNumber  *string
	Addresses    []string
	Description  *string
	Address      *string
	City         *string
	VehiclePlate *string
}

// ListUsersInput filters the admin account listing. Status is all, locked or
// active; Role "all" or empty disables the role filter. Name and Email are
// case-insensitive substrings.
type ListUsersInput struct {
	PageInput
	Status string
	Role   string
	Name   string
	Email  string
}

// ChangeAccessInput locks or unlocks an account.
type ChangeAccessInput struct {
	UserID uuid.UUID
	Locked bool
}

// CreateDeliveryPartnerInput defines the data an admin provides for a new delivery partner.
type CreateDeliveryPartnerInput struct {
	Name         string
	Email        string
	Password     string
	PhoneNumber  string
	VehiclePlate string
}

// AccountUsecase defines profile and account administration operations.
type AccountUsecase interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)

	ListUsers(ctx context.Context, input *ListUsersInput) (*entity.Page[*entity.User], error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// ChangeAccess locks or unlocks an account on behalf of adminID. Locking
	// revokes every session of the account.
	ChangeAccess(ctx context.Context, adminID uuid.UUID, input *ChangeAccessInput) (*entity.User, error)
	CreateDeliveryPartner(ctx context.Context, input *CreateDeliveryPartnerInput) (*entity.User, error)

	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.User, error)
	SearchStores(ctx context.Context, name string, page PageInput) (*entity.Page[*entity.User], error)
}
