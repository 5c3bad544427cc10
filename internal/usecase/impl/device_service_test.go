package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceService(t *testing.T) (*deviceService, *mockRepo.MockDeviceRepository) {
	t.Helper()

	repo := mockRepo.NewMockDeviceRepository(t)
	s := NewDeviceService(DeviceServiceParams{DeviceRepo: repo, Logger: newDiscardLogger()}).(*deviceService)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }

	return s, repo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	s, repo := newTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().Register(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
		return d.UserID == userID &&
			d.DeviceID == "pixel-8" &&
			d.FCMToken == "tok-1" &&
			d.Platform == entity.PlatformAndroid &&
			d.IsActive &&
			d.LastSeenAt.Equal(s.now())
	})).RunAndReturn(func(_ context.Context, d *entity.UserDevice) (*entity.UserDevice, error) {
		return d, nil
	})

	device, err := s.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: " tok-1 ",
		DeviceID: "pixel-8",
		Platform: "Android",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
}

func TestDeviceService_RegisterDevice_ReturnsStoredRow(t *testing.T) {
	s, repo := newTestDeviceService(t)
	ctx := context.Background()
	stored := &entity.UserDevice{ID: uuid.New(), DeviceID: "iphone", FCMToken: "tok-2", Platform: entity.PlatformIOS, IsActive: true}

	repo.EXPECT().Register(ctx, mock.Anything).Return(stored, nil)

	device, err := s.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "tok-2", DeviceID: "iphone", Platform: "ios"})

	require.NoError(t, err)
	assert.Same(t, stored, device)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info usecase.DeviceInfo
	}{
		{name: "unknown platform", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
		{name: "missing token", info: usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{name: "blank device id", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "  ", Platform: "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestDeviceService(t)

			_, err := s.RegisterDevice(context.Background(), uuid.New(), &tt.info)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDeviceService_ListDevices_IncludesInactive(t *testing.T) {
	s, repo := newTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), IsActive: true}, {ID: uuid.New()}}

	repo.EXPECT().ListByUser(ctx, userID, false).Return(devices, nil)

	got, err := s.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("own device", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		repo.EXPECT().ReplaceToken(ctx, deviceID, "tok-new").Return(nil)

		require.NoError(t, s.UpdateFCMToken(ctx, userID, deviceID, "tok-new"))
	})

	t.Run("another user's device looks missing", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := s.UpdateFCMToken(ctx, userID, deviceID, "tok-new")

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})

	t.Run("unknown device", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := s.UpdateFCMToken(ctx, userID, deviceID, "tok-new")

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})

	t.Run("token held elsewhere", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		repo.EXPECT().ReplaceToken(ctx, deviceID, "tok-new").Return(domainerrors.ErrConflict.WithDetails("taken"))

		err := s.UpdateFCMToken(ctx, userID, deviceID, "tok-new")

		assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	})

	t.Run("blank token", func(t *testing.T) {
		s, _ := newTestDeviceService(t)

		err := s.UpdateFCMToken(ctx, userID, deviceID, " ")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("own device", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		repo.EXPECT().Deactivate(ctx, deviceID).Return(nil)

		require.NoError(t, s.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("removed concurrently", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		repo.EXPECT().Deactivate(ctx, deviceID).Return(repository.ErrDeviceNotFound)

		err := s.DeactivateDevice(ctx, userID, deviceID)

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})

	t.Run("another user's device", func(t *testing.T) {
		s, repo := newTestDeviceService(t)
		repo.EXPECT().FindByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := s.DeactivateDevice(ctx, userID, deviceID)

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}

func TestParseDevicePlatform(t *testing.T) {
	p, ok := entity.ParseDevicePlatform(" IOS ")
	assert.True(t, ok)
	assert.Equal(t, entity.PlatformIOS, p)

	_, ok = entity.ParseDevicePlatform("blackberry")
	assert.False(t, ok)
}
