package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationSvc:  mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
		NotificationSvc:  fx.notificationSvc,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func newOrderEvent(customerID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		EventType:  service.EventTypeOrderStatusChanged,
		OrderID:    uuid.NewString(),
		OrderCode:  "Ab12Cd",
		StoreID:    uuid.NewString(),
		CustomerID: customerID.String(),
		Status:     string(entity.OrderStatusDelivering),
		OccurredAt: testNow,
	}
}

func devicesFor(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestNotificationService_DeliverOrderEvent_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	customerID := uuid.New()
	event := newOrderEvent(customerID)

	fx.deviceRepo.EXPECT().ListByUser(ctx, customerID, true).Return(devicesFor(customerID, 3), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1", "token-2"}, "Order update",
			"Your order Ab12Cd is now DELIVERING",
			mock.MatchedBy(func(data map[string]string) bool { return data["order_id"] == event.OrderID })).
		Return(2, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-1"}).Return(int64(1), nil)

	report, err := fx.service.DeliverOrderEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Devices)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, int64(1), report.Deactivated)
}

func TestNotificationService_DeliverOrderEvent_SplitsIntoProviderBatches(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, customerID, true).Return(devicesFor(customerID, firebaseBatchSize+1), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", firebaseBatchSize)}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).Once()

	report, err := fx.service.DeliverOrderEvent(ctx, newOrderEvent(customerID))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, firebaseBatchSize, report.Failed)
}

func TestNotificationService_DeliverOrderEvent_AllBatchesFailed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, customerID, true).Return(devicesFor(customerID, 1), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("unavailable"))

	_, err := fx.service.DeliverOrderEvent(ctx, newOrderEvent(customerID))

	assert.Error(t, err)
}

func TestNotificationService_DeliverOrderEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, customerID, true).Return(nil, nil)

	report, err := fx.service.DeliverOrderEvent(ctx, newOrderEvent(customerID))

	require.NoError(t, err)
	assert.Zero(t, report.Devices)
}

func TestNotificationService_DeliverOrderEvent_BadCustomerID(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.DeliverOrderEvent(context.Background(), &service.OrderEvent{CustomerID: "nobody"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().
		ListByUser(ctx, userID, true, entity.PageRequest{Size: 10, Direction: entity.SortDesc}).
		Return([]*entity.Notification{{ID: notificationID, UserID: userID}}, int64(1), nil)
	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)

	page, err := fx.service.ListNotifications(ctx, userID, true, usecase.PageInput{})
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)

	err = fx.service.MarkRead(ctx, userID, notificationID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkReadSucceeds(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()
	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID).Return(nil)

	assert.NoError(t, fx.service.MarkRead(ctx, userID, notificationID))
}

func TestNotificationService_UnreadCountAndMarkAll(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(4), nil)
	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(4), nil)

	n, err := fx.service.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	updated, err := fx.service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}

func TestNotificationService_MarkAllReadFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(0), errors.New("connection reset"))

	_, err := fx.service.MarkAllRead(ctx, userID)
	assert.ErrorContains(t, err, "connection reset")
}
