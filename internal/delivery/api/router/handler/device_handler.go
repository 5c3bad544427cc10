package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the customer's push device registry.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest identifies a handset by the client's own stable id.
// Registering the same deviceId again refreshes its token.
type RegisterDeviceRequest struct {
	DeviceID string `json:"deviceId" validate:"required,max=255"`
	FCMToken string `json:"fcmToken" validate:"required,max=512"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"required,max=512"`
}

// RegisterDevice handles POST /api/customer/devices.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), p.UserID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toDeviceResponse(device), "Device registered")
}

// ListDevices handles GET /api/customer/devices, inactive devices included.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), p.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapSlice(devices, toDeviceResponse), "")
}

// deviceTarget resolves the caller and the :id path parameter.
func deviceTarget(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	p, err := principal(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return p.UserID, deviceID, nil
}

// UpdateFCMToken handles PUT /api/customer/devices/:id/token. Firebase rotates
// tokens, so clients call this whenever the SDK hands them a new one.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, deviceID, err := deviceTarget(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Token updated")
}

// DeactivateDevice handles DELETE /api/customer/devices/:id. The row is kept
// and stops receiving pushes.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, deviceID, err := deviceTarget(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Device deactivated")
}
