package rainfall

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Date layouts seen across the gauge-detail page's rendering modes. The
// grid and table render "MM/DD/YYYY hh:mm AM", the embedded script block
// uses ISO-ish stamps, and older pages drop the time entirely.
var dateLayouts = []string{
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a date or date-time token in the given zone.
// Returns false for anything that does not resolve to a valid calendar
// date; callers drop the candidate rather than coercing.
func parseTimestamp(token string, loc *time.Location) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, token, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount parses a rainfall amount token. Unit suffixes ("in",
// "inches", a trailing double-quote) and thousands separators are
// stripped. Negative, NaN, and infinite values are rejected.
func parseAmount(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	token = strings.TrimSuffix(token, `"`)
	lower := strings.ToLower(token)
	for _, suffix := range []string{"inches", "inch", "in."} {
		if strings.HasSuffix(lower, suffix) {
			token = token[:len(token)-len(suffix)]
			break
		}
	}
	// Bare "in" only counts as a unit when something numeric precedes it.
	if strings.HasSuffix(lower, "in") && len(lower) > 2 {
		token = token[:len(token)-2]
	}
	token = strings.TrimSpace(strings.ReplaceAll(token, ",", ""))
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// civilDay truncates a timestamp to midnight of its civil day in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
