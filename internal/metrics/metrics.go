// Package metrics exposes Prometheus collectors for the scraper service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scrapesTotal               *prometheus.CounterVec
	scrapeDurationSeconds      *prometheus.HistogramVec
	recordsExtractedTotal      *prometheus.CounterVec
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		scrapesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fws_scrapes_total",
				Help: "Total number of gauge scrapes, labeled by location and outcome.",
			},
			[]string{"location", "outcome"},
		)

		scrapeDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fws_scrape_duration_seconds",
				Help:    "Histogram of end-to-end scrape latencies, labeled by location.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
			},
			[]string{"location"},
		)

		recordsExtractedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fws_records_extracted_total",
				Help: "Total rainfall records extracted, labeled by winning strategy.",
			},
			[]string{"strategy"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveScrape records the outcome and duration of one gauge scrape.
func ObserveScrape(location, outcome string, duration time.Duration) {
	scrapesTotal.WithLabelValues(location, outcome).Inc()
	scrapeDurationSeconds.WithLabelValues(location).Observe(duration.Seconds())
}

// ObserveExtraction counts records produced by the winning strategy.
func ObserveExtraction(strategy string, records int) {
	if records > 0 {
		recordsExtractedTotal.WithLabelValues(strategy).Add(float64(records))
	}
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
