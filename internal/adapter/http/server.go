// Package http exposes the geohash computation as a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloudmollusc/xkcd-geohash/internal/domain"
	"github.com/cloudmollusc/xkcd-geohash/internal/observability"
	"github.com/cloudmollusc/xkcd-geohash/internal/render"
)

// Server exposes geohash, globalhash, health, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	provider   domain.PriceProvider
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// hashResponse is the body of a successful hash request. The graticule is
// omitted for globalhashes, which have no cell.
type hashResponse struct {
	render.Payload
	Graticule *graticulePayload `json:"graticule,omitempty"`
}

type graticulePayload struct {
	Lat int `json:"lat"`
	Lon int `json:"lon"`
}

// NewServer creates an HTTP server with the v1 API routes.
func NewServer(addr string, provider domain.PriceProvider, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/geohash", s.handleGeohash)
	mux.HandleFunc("GET /v1/globalhash", s.handleGlobalhash)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.instrument(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleGeohash(w http.ResponseWriter, r *http.Request) {
	lat, err := floatQuery(r, "lat")
	if err != nil {
		s.writeBadRequest(w, "local", err)
		return
	}
	lon, err := floatQuery(r, "lon")
	if err != nil {
		s.writeBadRequest(w, "local", err)
		return
	}
	day, err := dateQuery(r)
	if err != nil {
		s.writeBadRequest(w, "local", err)
		return
	}

	g, err := domain.GraticuleForPoint(lat, lon)
	if err != nil {
		s.writeBadRequest(w, "local", err)
		return
	}

	h, err := domain.NewGeohasher(g.Lat, g.Lon, s.provider)
	if err != nil {
		s.writeHashError(w, "local", err)
		return
	}

	res, err := h.Hash(r.Context(), day)
	if err != nil {
		s.writeHashError(w, "local", err)
		return
	}

	s.countHash("local", "success")
	writeJSON(w, http.StatusOK, hashResponse{
		Payload:   render.NewPayload(res),
		Graticule: &graticulePayload{Lat: g.Lat, Lon: g.Lon},
	})
}

func (s *Server) handleGlobalhash(w http.ResponseWriter, r *http.Request) {
	day, err := dateQuery(r)
	if err != nil {
		s.writeBadRequest(w, "global", err)
		return
	}

	h, err := domain.NewGlobalGeohasher(s.provider)
	if err != nil {
		s.writeHashError(w, "global", err)
		return
	}

	res, err := h.Hash(r.Context(), day)
	if err != nil {
		s.writeHashError(w, "global", err)
		return
	}

	s.countHash("global", "success")
	writeJSON(w, http.StatusOK, hashResponse{Payload: render.NewPayload(res)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// instrument assigns request IDs and records per-route latency.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		if route := metricRoute(r.URL.Path); route != "" && s.metrics != nil {
			s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
		s.logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", id,
			"duration", time.Since(start),
		)
	})
}

// metricRoute maps a request path to its metric label. Unknown paths are not
// observed so stray requests cannot grow the label set.
func metricRoute(path string) string {
	switch path {
	case "/v1/geohash", "/v1/globalhash", "/healthz":
		return path
	default:
		return ""
	}
}

func floatQuery(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func dateQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return domain.Today(), nil
	}
	day, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, errors.New("date must be formatted YYYY-MM-DD")
	}
	return day, nil
}

func (s *Server) writeBadRequest(w http.ResponseWriter, kind string, err error) {
	s.countHash(kind, "invalid")
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func (s *Server) writeHashError(w http.ResponseWriter, kind string, err error) {
	var unavailable *domain.PriceUnavailableError
	if errors.As(err, &unavailable) {
		s.countHash(kind, "price_unavailable")
		s.logger.Warn("dow price unavailable",
			"date", unavailable.Date.Format(domain.DateFormat),
			"error", err,
		)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	s.countHash(kind, "error")
	s.logger.Error("geohash computation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (s *Server) countHash(kind, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.HashesComputed.WithLabelValues(kind, outcome).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
