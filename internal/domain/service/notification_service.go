package service

import (
	"context"
)

// NotificationService sends push notifications to devices.
type NotificationService interface {
	// SendBatchNotification sends one message to many device tokens and
	// reports which tokens the provider rejected as invalid.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
