package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LaurenceW01/harris-county-fws-scraper/internal/locations"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/metrics"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/rainfall"
)

const windowPeriod = "7 complete days prior to today"

// rainfallResponse is the success payload for GET /rainfall. Field names
// follow the original wrapper; window and count fields are additive.
type rainfallResponse struct {
	Success     bool    `json:"success"`
	LocationID  string  `json:"location_id"`
	Description string  `json:"location_description,omitempty"`
	Total       float64 `json:"total_rainfall_inches"`
	RecordCount int     `json:"record_count"`
	Period      string  `json:"period"`
	WindowStart string  `json:"window_start"`
	WindowEnd   string  `json:"window_end"`
	Strategy    string  `json:"strategy,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// getRainfall handles GET /rainfall?location=<id>. Unknown locations are
// 404; fetch and extraction failures are 502 because the upstream site,
// not this service, could not produce usable data.
func (s *Server) getRainfall(w http.ResponseWriter, r *http.Request) {
	locationID := strings.TrimSpace(r.URL.Query().Get("location"))
	if locationID == "" {
		locationID = locations.DefaultID
	}
	desc, err := locations.Describe(locationID)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "unknown location", locationID)
		return
	}

	start := time.Now()
	asOf := s.clock.Now()

	content, err := s.fetcher.FetchPage(r.Context(), locationID, asOf)
	if err != nil {
		s.logger.Error("gauge page fetch failed",
			zap.String("location", locationID),
			zap.Error(err),
		)
		metrics.ObserveScrape(locationID, "fetch_error", time.Since(start))
		writeFailure(w, http.StatusBadGateway, "failed to fetch gauge page: "+err.Error(), locationID)
		return
	}

	report, err := s.pipeline.ComputeSevenDayTotalAt(content, asOf)
	if err != nil {
		s.logger.Error("rainfall extraction failed",
			zap.String("location", locationID),
			zap.Error(err),
		)
		metrics.ObserveScrape(locationID, "extract_error", time.Since(start))
		msg := "failed to extract rainfall data"
		var perr *rainfall.PipelineError
		if errors.As(err, &perr) {
			msg = perr.Error()
		}
		writeFailure(w, http.StatusBadGateway, msg, locationID)
		return
	}

	metrics.ObserveScrape(locationID, "success", time.Since(start))
	metrics.ObserveExtraction(report.Strategy, report.RecordCount)
	s.logger.Info("rainfall total computed",
		zap.String("location", locationID),
		zap.Float64("total_inches", report.Total),
		zap.Int("record_count", report.RecordCount),
		zap.String("strategy", report.Strategy),
	)

	writeJSON(w, http.StatusOK, rainfallResponse{
		Success:     true,
		LocationID:  locationID,
		Description: desc,
		Total:       report.Total,
		RecordCount: report.RecordCount,
		Period:      windowPeriod,
		WindowStart: report.WindowStart.Format("2006-01-02"),
		WindowEnd:   report.WindowEnd.Format("2006-01-02"),
		Strategy:    report.Strategy,
		Timestamp:   asOf.In(s.loc).Format(time.RFC3339),
	})
}

// getLocations handles GET /locations.
func (s *Server) getLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"locations": locations.All(),
	})
}
