package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client reports when it registers for pushes.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages the devices a customer receives order pushes on.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (user, DeviceID): registering again
	// refreshes the token and reactivates the device.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// ListDevices returns every device of the user, inactive ones included.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice stops pushes to one of the user's devices.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
