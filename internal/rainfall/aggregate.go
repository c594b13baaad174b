package rainfall

import "math"

// Sum totals the rainfall amounts over the given records, rounded to two
// decimal places half away from zero. The count comes back alongside the
// total so zero-amount days still register as observed records.
func Sum(records []Record) (total float64, count int) {
	for _, rec := range records {
		total += rec.Amount
	}
	return roundInches(total), len(records)
}

// roundInches rounds to 2 decimals, half away from zero. math.Round is
// exactly that mode; the behavior is pinned by tests rather than left to
// incidental float formatting.
func roundInches(v float64) float64 {
	return math.Round(v*100) / 100
}
