package rainfall

import "time"

// Window is the trailing span of complete civil days a total covers:
// [asOf-7d, asOf-1d] inclusive, excluding the current, still-accumulating
// day. Boundaries are midnights in the monitoring network's timezone.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow computes the 7-complete-day window ending the day before the
// as-of instant, in the given civil calendar.
func NewWindow(asOf time.Time, loc *time.Location) Window {
	today := civilDay(asOf, loc)
	return Window{
		Start: today.AddDate(0, 0, -7),
		End:   today.AddDate(0, 0, -1),
	}
}

// Contains reports whether a civil day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Filter returns the records whose reporting date falls inside the
// window. An empty result is valid, not an error; the caller decides
// whether that means a dry week or a failed extraction.
func (w Window) Filter(records []Record) []Record {
	var out []Record
	for _, rec := range records {
		if w.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}
