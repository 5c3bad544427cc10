// Package handler contains the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler turns Pub/Sub push deliveries into order notifications.
//
// Status codes drive Pub/Sub: 200 acks the message, anything else makes it
// redeliver. Messages that can never succeed are therefore acked too.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config

	return &PushHandler{
		// The local push emulator and develop deployments send no OIDC token.
		verifyPushAuth: cfg.PubSub != nil &&
			cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
			cfg.Env.Env != constants.EnvDevelop,
		validateToken:  idtoken.Validate,
		logger:         params.Logger.With(slog.String("component", "push")),
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles POST on the push endpoint.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := checkPushToken(c.Request(), h.validateToken); err != nil {
			h.logger.Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg := new(PubSubMessage)
	if err := c.Bind(msg); err != nil {
		h.logger.Error("Unreadable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := msg.orderEvent()
	if err != nil {
		h.logger.Error("Unreadable push message",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.EventType != service.EventTypeOrderStatusChanged {
		h.logger.Info("Skipping event", slog.String(constants.AttrEventType, event.EventType))

		return c.NoContent(http.StatusOK)
	}

	ctx := c.Request().Context()
	requestID := h.extractRequestID(ctx, msg, event)
	logger := h.logger.With(
		slog.String(constants.AttrRequestID, requestID),
		slog.String(constants.AttrOrderID, event.OrderID),
		slog.String("message_id", msg.Message.MessageID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	report, err := h.notificationUC.DeliverOrderEvent(ctx, event)
	if err != nil {
		status := deliveryFailureStatus(err)
		logger.Error("Order event not delivered",
			slog.String("order_code", event.OrderCode),
			slog.Bool("redeliver", status != http.StatusOK),
			slog.Any("error", err))

		return c.NoContent(status)
	}

	logger.Info("Order event delivered",
		slog.String("status", event.Status),
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int64("deactivated", report.Deactivated))

	return c.NoContent(http.StatusOK)
}

// deliveryFailureStatus acks client errors, which would fail again on every
// redelivery, and asks for redelivery of everything else.
func deliveryFailureStatus(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return http.StatusOK
	}

	return http.StatusServiceUnavailable
}

// extractRequestID picks the first request id found on the message attributes,
// the event, or the push request itself, and makes one up otherwise.
func (h *PushHandler) extractRequestID(ctx context.Context, msg *PubSubMessage, event *service.OrderEvent) string {
	for _, id := range []string{
		msg.attr(constants.AttrRequestID),
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}
