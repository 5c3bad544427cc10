package service

// QRCodeService renders order codes as QR images.
type QRCodeService interface {
	// GenerateOrderQR returns a PNG encoding the order code.
	GenerateOrderQR(orderCode string) ([]byte, error)

	// ParseOrderQR extracts the order code from a scanned payload.
	ParseOrderQR(payload string) (string, error)
}
