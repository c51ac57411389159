// Package web serves the browser dashboard: one page with three charts and a
// wine type selector, backed by a JSON API that rebuilds the figures when the
// selection changes.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// DefaultAddr is the address the dashboard listens on when none is configured
const DefaultAddr = "127.0.0.1:8070"

const shutdownTimeout = 5 * time.Second

// Server represents the web dashboard
type Server struct {
	svc          dashboard.Service
	listener     net.Listener
	httpServer   *http.Server
	metrics      *Metrics
	logger       *slog.Logger
	shutdownOnce sync.Once
	shutdownErr  error
}

// NewServer binds addr and prepares the routes. An empty addr uses DefaultAddr.
func NewServer(svc dashboard.Service, addr string, logger *slog.Logger) (*Server, error) {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = slog.Default()
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		svc:      svc,
		listener: listener,
		metrics:  NewMetrics(),
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Metrics returns the request metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the dashboard routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/figures", s.handleFigures)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.countRequests(mux)
}

// Start serves until ctx is cancelled or the listener fails, then shuts down
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("dashboard starting", "addr", s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("dashboard context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve error", "error", err)
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("serve: %w", err)
		}
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server. Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("failed to shut down: %w", err)
			return
		}
		snapshot := s.metrics.GetSnapshot()
		s.logger.Info("dashboard stopped",
			"requests", snapshot.RequestsTotal,
			"figure_requests", snapshot.FigureRequests,
			"uptime", snapshot.Uptime)
	})
	return s.shutdownErr
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncRequests()
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}
