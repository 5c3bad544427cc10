package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the customer's in-app inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// List handles GET /api/customer/notifications. unread=true hides read ones.
func (h *NotificationHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	var unreadOnly bool
	if err := echo.QueryParamsBinder(c).Bool("unread", &unreadOnly).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unread must be true or false")
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), p.UserID, unreadOnly, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPageData(notifications, toNotificationResponse), "")
}

// UnreadCount handles GET /api/customer/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	n, err := h.notificationUC.CountUnread(c.Request().Context(), p.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, UnreadCountResponse{Unread: n}, "")
}

// MarkRead handles PUT /api/customer/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), p.UserID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Notification read")
}

// MarkAllRead handles PUT /api/customer/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	n, err := h.notificationUC.MarkAllRead(c.Request().Context(), p.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, MarkAllReadResponse{Updated: n}, "")
}
