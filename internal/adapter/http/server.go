// Package http serves the loader's operational endpoints. The batch binary
// is short-lived compared to a resident service, but orchestration still
// probes it: /healthz says the process is up, /readyz flips once the first
// station lands in the store, /metrics exposes the batch counters.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// readyProbeTimeout bounds one readiness check.
const readyProbeTimeout = 2 * time.Second

// ReadinessChecker reports whether the batch has stored at least one
// station yet.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// statusResponse is the body of every probe endpoint.
type statusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Server exposes the probe and metrics endpoints for one batch run.
type Server struct {
	httpServer *http.Server
	checker    ReadinessChecker
	logger     *slog.Logger
}

// NewServer wires the probe mux around the given readiness source.
func NewServer(addr string, checker ReadinessChecker, logger *slog.Logger) *Server {
	s := &Server{
		checker: checker,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
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

// Shutdown drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// handleReadyz answers 503 until the first station is stored: a batch that
// has produced nothing yet is indistinguishable from one that never will,
// and the probe reports the wait rather than guessing.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
	defer cancel()

	if err := s.checker.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{
			Status: "waiting",
			Reason: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}

func writeJSON(w http.ResponseWriter, status int, body statusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck // best-effort probe response
}
