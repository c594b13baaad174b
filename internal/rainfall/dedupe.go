package rainfall

import "sort"

// Dedupe collapses candidate records into one canonical record per
// reporting date. The site emits both hourly subtotals and a running
// daily total for the same date, so duplicates keep the maximum amount
// observed, which selects the running total. Inputs are not mutated; the
// result is a new, date-sorted slice. Idempotent.
func Dedupe(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	byDate := make(map[int64]Record, len(records))
	for _, rec := range records {
		key := rec.Date.Unix()
		best, seen := byDate[key]
		if !seen || rec.Amount > best.Amount {
			byDate[key] = rec
		}
	}
	out := make([]Record, 0, len(byDate))
	for _, rec := range byDate {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
