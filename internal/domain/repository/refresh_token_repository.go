package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no live session holds the token.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores login sessions keyed by the SHA-256 of the
// refresh token.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token *entity.RefreshToken) error

	// FindLive returns the session only while it has not expired at now.
	FindLive(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error)

	// Revoke ends one session.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeUser ends every session of a user.
	RevokeUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// PurgeExpired deletes sessions that expired before the cutoff.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}
