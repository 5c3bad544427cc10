// Package qrcode renders order codes as QR images and reads them back from
// scanned payloads.
package qrcode

import (
	"encoding/json"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	payloadTypeOrder = "order"
	defaultSize      = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// OrderPayload is the JSON encoded in an order QR image.
type OrderPayload struct {
	OrderCode string `json:"order_code"`
	Type      string `json:"type"`
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService reads the qrcode section. Unknown levels fall back to M and
// a non-positive size to 256 pixels.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	s := &qrcodeService{size: defaultSize, level: qrcode.Medium}
	if cfg.QRCode == nil {
		return s
	}

	if cfg.QRCode.Size > 0 {
		s.size = cfg.QRCode.Size
	}
	if level, ok := recoveryLevels[strings.ToUpper(cfg.QRCode.ErrorCorrectionLevel)]; ok {
		s.level = level
	}

	return s
}

// GenerateOrderQR renders the order code as a PNG a store can scan at pickup.
func (s *qrcodeService) GenerateOrderQR(orderCode string) ([]byte, error) {
	if !entity.IsOrderCode(orderCode) {
		return nil, errors.Errorf("invalid order code: %q", orderCode)
	}

	content, err := json.Marshal(OrderPayload{OrderCode: orderCode, Type: payloadTypeOrder})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	png, err := qrcode.Encode(string(content), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

// ParseOrderQR accepts the JSON payload of an order QR or a bare order code.
func (s *qrcodeService) ParseOrderQR(payload string) (string, error) {
	if entity.IsOrderCode(payload) {
		return payload, nil
	}

	var p OrderPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if p.Type != payloadTypeOrder {
		return "", errors.Errorf("invalid QR code type: %s", p.Type)
	}
	if !entity.IsOrderCode(p.OrderCode) {
		return "", errors.Errorf("invalid order code: %q", p.OrderCode)
	}

	return p.OrderCode, nil
}
