package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device matches.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists the handsets customers receive pushes on.
type DeviceRepository interface {
	// Register stores the device under (UserID, DeviceID). A device already
	// known under that key takes the new token and platform and is reactivated.
	// Any other device still holding the token loses it. The stored row is
	// returned.
	Register(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListByUser returns the user's devices, most recently seen first.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)

	// ReplaceToken moves a device to a new token and reactivates it.
	ReplaceToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateTokens stops pushes to the active devices holding any of the
	// tokens and reports how many it stopped.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)
}
