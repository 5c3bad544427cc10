package util

import (
	"testing"
	"time"
)

func TestParseDayRange(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		from      string
		to        string
		wantStart time.Time
		wantEnd   time.Time
		wantOK    bool
		wantErr   bool
	}{
		{name: "no bounds", wantOK: false},
		{name: "both bounds", from: "2024-03-01", to: "2024-03-31", wantStart: day(2024, 3, 1), wantEnd: day(2024, 4, 1), wantOK: true},
		{name: "same day", from: "2024-03-01", to: "2024-03-01", wantStart: day(2024, 3, 1), wantEnd: day(2024, 3, 2), wantOK: true},
		{name: "only from", from: "2024-03-01", wantStart: day(2024, 3, 1), wantOK: true},
		{name: "only to", to: "2024-02-28", wantEnd: day(2024, 2, 29), wantOK: true},
		{name: "bad from", from: "03/01/2024", wantErr: true},
		{name: "bad to", to: "2024-13-01", wantErr: true},
		{name: "inverted", from: "2024-03-02", to: "2024-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, ok, err := ParseDayRange(tt.from, tt.to)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDayRange(%q, %q) expected error", tt.from, tt.to)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseDayRange(%q, %q) unexpected error: %v", tt.from, tt.to, err)
			}
			if ok != tt.wantOK || !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Fatalf("ParseDayRange(%q, %q) = %s, %s, %t", tt.from, tt.to, start, end, ok)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	t.Parallel()

	a := HashToken("refresh-token")
	if len(a) != 64 {
		t.Fatalf("HashToken length = %d, want 64", len(a))
	}
	if a != HashToken("refresh-token") {
		t.Fatal("HashToken is not deterministic")
	}
	if a == HashToken("other-token") {
		t.Fatal("HashToken collided on different input")
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
