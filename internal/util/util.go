package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DayLayout is the date format of from/to query parameters.
const DayLayout = "2006-01-02"

// HashToken returns the hex SHA256 digest of a token so that raw refresh
// tokens are never stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseDay parses a YYYY-MM-DD date as midnight UTC.
func ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return day, nil
}

// ParseDayRange turns inclusive from/to dates into a half-open [start, end)
// interval. An empty bound stays zero. ok is false when both are empty.
func ParseDayRange(from, to string) (start, end time.Time, ok bool, err error) {
	if from == "" && to == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if from != "" {
		if start, err = ParseDay(from); err != nil {
			return time.Time{}, time.Time{}, false, err
		}
	}
	if to != "" {
		var last time.Time
		if last, err = ParseDay(to); err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		end = last.AddDate(0, 0, 1)
	}
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		return time.Time{}, time.Time{}, false, errors.Errorf("from %s is after to %s", from, to)
	}

	return start, end, true, nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
