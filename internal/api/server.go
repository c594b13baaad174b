// Package api exposes the HTTP interface for the rainfall scraper
// service. The /rainfall and /locations contracts match the original
// spreadsheet-facing wrapper so existing callers keep working.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/LaurenceW01/harris-county-fws-scraper/internal/metrics"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/rainfall"
)

// PageFetcher retrieves raw gauge-detail page content. Implemented by
// fetcher.Client; faked in tests.
type PageFetcher interface {
	FetchPage(ctx context.Context, locationID string, asOf time.Time) ([]byte, error)
}

// Server wires HTTP handlers to the fetcher and pipeline.
type Server struct {
	router   chi.Router
	fetcher  PageFetcher
	pipeline *rainfall.Pipeline
	clock    clockwork.Clock
	loc      *time.Location
	logger   *zap.Logger
}

// NewServer constructs a Server with middleware and routes. A nil clock
// falls back to real time.
func NewServer(
	fetcher PageFetcher,
	pipeline *rainfall.Pipeline,
	clock clockwork.Clock,
	loc *time.Location,
	requestTimeout time.Duration,
	logger *zap.Logger,
) *Server {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.Init()

	s := &Server{
		fetcher:  fetcher,
		pipeline: pipeline,
		clock:    clock,
		loc:      loc,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(timeoutMiddleware(requestTimeout))
	r.Use(metrics.Middleware)

	r.Get("/health", s.health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/rainfall", s.getRainfall)
	r.Get("/locations", s.getLocations)

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Harris County FWS Rainfall Scraper API",
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", zap.Any("error", rec))
				writeFailure(w, http.StatusInternalServerError, "internal server error", "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeFailure(w http.ResponseWriter, status int, msg, locationID string) {
	payload := map[string]any{
		"success": false,
		"error":   msg,
	}
	if locationID != "" {
		payload["location_id"] = locationID
	}
	writeJSON(w, status, payload)
}
