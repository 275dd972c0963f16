// Package server exposes the statement pipeline over HTTP for the
// dashboard frontend. Every request loads and aggregates from scratch;
// there is no shared state between requests.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/spendlens-dev/spendlens/internal/config"
)

// Server wires the dashboard API routes onto an http.Server.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	http   *http.Server
}

// New builds a Server from configuration. The handler is fully assembled
// here; ListenAndServe only binds the listener.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard/expenses", s.handleExpenses).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/fire", s.handleFire).Methods(http.MethodGet)
	api.HandleFunc("/transactions", s.handleTransactions).Methods(http.MethodGet)
	api.HandleFunc("/accounts", s.handleAccounts).Methods(http.MethodGet)

	s.http = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.withCORS(s.withLogging(r)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the assembled HTTP handler, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

// withCORS allows any origin, matching the permissive dashboard setup.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
