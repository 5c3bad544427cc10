// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository persists accounts together with their role profile.
type UserRepository interface {
	// Create persists a user, its profile and, for customers, the cart.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user with its profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account uses the email, case-insensitively.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update saves the account columns and the profile payload.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetLocked locks or unlocks the account.
	SetLocked(ctx context.Context, id uuid.UUID, locked bool) error

	// List returns one page of users matching the criteria and the total count.
	// Supported fields: name, email, role, locked, createdAt.
	List(ctx context.Context, criteria *Criteria, page entity.PageRequest) ([]*entity.User, int64, error)
}
