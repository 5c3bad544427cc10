// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up. Role selects the
// profile: CUSTOMER or STORE. The store fields are ignored for customers.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        entity.Role
	PhoneNumber string
	Description string
	Address     string
	City        string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a fresh access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for sign-up and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// CleanupExpiredSessions deletes refresh tokens past their expiry.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
