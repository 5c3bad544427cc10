package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the OS family a push token was issued for.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// ParseDevicePlatform accepts a platform name in any case.
func ParseDevicePlatform(s string) (DevicePlatform, bool) {
	switch p := DevicePlatform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is a handset a customer receives order pushes on. DeviceID is
// chosen by the client and is unique per user; FCMToken is unique overall.
type UserDevice struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DeviceID   string
	FCMToken   string
	Platform   DevicePlatform
	IsActive   bool
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
