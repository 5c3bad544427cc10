package impl

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	notificationSvc  service.NotificationService
	pager            pager
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		notificationSvc:  params.NotificationSvc,
		pager:            newPager(params.Config),
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, in usecase.PageInput) (*entity.Page[*entity.Notification], error) {
	page, err := s.pager.request(in)
	if err != nil {
		return nil, err
	}

	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly, page)
	if err != nil {
		return nil, translateListError(err, "failed to list notifications")
	}

	return entity.NewPage(notifications, page, total), nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.notificationRepo.CountUnread(ctx, userID)

	return n, errors.Wrap(err, "count unread notifications")
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, "mark notification read")
	}

	return errors.Wrap(err, "mark notification read")
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "mark all notifications read")
	}
	s.log(ctx).Debug("Notifications marked read", slog.Int64("count", n))

	return n, nil
}

// DeliverOrderEvent sends the status change to every active device of the
// customer. It fails only when no batch could be handed to the provider, so
// the message is redelivered.
func (s *notificationService) DeliverOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.DeliveryReport, error) {
	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("invalid customer id %q", event.CustomerID)
	}

	logger := s.log(ctx).With(
		slog.String(constants.AttrOrderID, event.OrderID),
		slog.String(constants.AttrEventType, event.EventType))

	devices, err := s.deviceRepo.ListByUser(ctx, customerID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	report := &usecase.DeliveryReport{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Info("No active devices for order event", slog.Any("customerID", customerID))

		return report, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := "Order update"
	body := fmt.Sprintf("Your order %s is now %s", event.OrderCode, event.Status)
	data := map[string]string{
		"event_type": event.EventType,
		"order_id":   event.OrderID,
		"order_code": event.OrderCode,
		"status":     event.Status,
	}

	var lastErr error
	batches, failedBatches := 0, 0
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]
		batches++

		successCount, failureCount, invalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			logger.Error("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)
			failedBatches++
			lastErr = err

			continue
		}

		report.Sent += successCount
		report.Failed += failureCount
		report.InvalidTokens = append(report.InvalidTokens, invalidTokens...)
	}

	if failedBatches == batches {
		return report, errors.Wrap(lastErr, "failed to send any notification batch")
	}

	if len(report.InvalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateTokens(ctx, report.InvalidTokens)
		if err != nil {
			// The push already went out; stale tokens are retried on the next event.
			logger.Error("Failed to deactivate invalid devices", slog.Any("error", err))
		}
		report.Deactivated = deactivated
	}

	logger.Info("Order event delivered",
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int64("deactivated", report.Deactivated))

	return report, nil
}
