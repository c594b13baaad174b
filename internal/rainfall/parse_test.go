package rainfall

import (
	"testing"
	"time"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	return loc
}

func TestParseTimestamp(t *testing.T) {
	loc := chicago(t)

	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{name: "slash date", token: "08/20/2025", want: time.Date(2025, 8, 20, 0, 0, 0, 0, loc), ok: true},
		{name: "slash date no leading zero", token: "8/5/2025", want: time.Date(2025, 8, 5, 0, 0, 0, 0, loc), ok: true},
		{name: "slash datetime 12h", token: "8/20/2025 7:00 AM", want: time.Date(2025, 8, 20, 7, 0, 0, 0, loc), ok: true},
		{name: "slash datetime 24h", token: "8/20/2025 19:00", want: time.Date(2025, 8, 20, 19, 0, 0, 0, loc), ok: true},
		{name: "iso date", token: "2025-08-20", want: time.Date(2025, 8, 20, 0, 0, 0, 0, loc), ok: true},
		{name: "iso datetime", token: "2025-08-20T07:15:00", want: time.Date(2025, 8, 20, 7, 15, 0, 0, loc), ok: true},
		{name: "impossible calendar date", token: "13/45/2025", ok: false},
		{name: "empty", token: "", ok: false},
		{name: "garbage", token: "n/a", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimestamp(tt.token, loc)
			if ok != tt.ok {
				t.Fatalf("parseTimestamp(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("parseTimestamp(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  float64
		ok    bool
	}{
		{name: "plain decimal", token: "0.25", want: 0.25, ok: true},
		{name: "zero is valid", token: "0.00", want: 0, ok: true},
		{name: "integer", token: "2", want: 2, ok: true},
		{name: "unit in", token: "0.38 in", want: 0.38, ok: true},
		{name: "unit inches", token: "0.38 inches", want: 0.38, ok: true},
		{name: "unit quote", token: `1.04"`, want: 1.04, ok: true},
		{name: "thousands separator", token: "1,204.5", want: 1204.5, ok: true},
		{name: "negative rejected", token: "-0.10", ok: false},
		{name: "bare unit rejected", token: "in", ok: false},
		{name: "empty rejected", token: "", ok: false},
		{name: "non numeric rejected", token: "trace", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.token)
			if ok != tt.ok {
				t.Fatalf("parseAmount(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("parseAmount(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
