package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	token := strings.TrimSpace(info.FCMToken)
	clientID := strings.TrimSpace(info.DeviceID)
	if token == "" || clientID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcmToken and deviceId are required")
	}
	platform, ok := entity.ParseDevicePlatform(info.Platform)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("unsupported platform %q", info.Platform)
	}

	now := s.now()
	device, err := s.deviceRepo.Register(ctx, &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   clientID,
		FCMToken:   token,
		Platform:   platform,
		IsActive:   true,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("user_id", userID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("platform", string(platform)))

	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	return devices, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	fcmToken = strings.TrimSpace(fcmToken)
	if fcmToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcmToken is required")
	}
	if err := s.ensureOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	return deviceNotFound(s.deviceRepo.ReplaceToken(ctx, deviceID, fcmToken), "replace token")
}

func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.ensureOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	return deviceNotFound(s.deviceRepo.Deactivate(ctx, deviceID), "deactivate device")
}

// ensureOwned reports another user's device as missing.
func (s *deviceService) ensureOwned(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return deviceNotFound(err, "find device")
	}
	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrDeviceNotFound, "device of another user")
	}

	return nil
}

func deviceNotFound(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return errors.Wrap(domainerrors.ErrDeviceNotFound, action)
	default:
		return errors.Wrap(err, action)
	}
}
