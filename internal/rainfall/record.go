// Package rainfall implements the extraction and aggregation pipeline for
// Harris County FWS gauge readings. Raw gauge-detail page content goes in,
// a deduplicated set of daily records and a 7-complete-day total come out.
package rainfall

import "time"

// Record is a single observed rainfall amount tied to a reporting date.
// Date is the civil day (midnight, network timezone) used for deduplication
// and windowing; From/To carry the reading interval when the source markup
// provides one. Amount is inches and never negative; zero means a dry day.
type Record struct {
	Date   time.Time  `json:"date"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
	Amount float64    `json:"amount_inches"`
}

// Report is the outcome of a successful pipeline run.
type Report struct {
	// Total is the rounded 7-day rainfall sum in inches.
	Total       float64   `json:"total_rainfall_inches"`
	RecordCount int       `json:"record_count"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	// Strategy names the extractor that produced the candidate records.
	Strategy string   `json:"strategy"`
	Records  []Record `json:"records,omitempty"`
}
