// Package gallery serves the agent catalog over HTTP: a JSON API for the
// filtered catalog, per-agent detail and export endpoints, and the embedded
// single-page gallery client.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/logging"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// Server is the gallery HTTP server.
type Server struct {
	cfg      *models.GalleryConfig
	log      *logging.Logger
	catalog  storage.CatalogStoreManager
	selector *core.CatalogSelector
	eventLog observability.EventLog
	version  string

	httpServer *http.Server
	watcher    *catalogWatcher
}

// ServerOption configures the gallery server.
type ServerOption func(*Server)

// WithEventLog enables usage event recording. A nil log disables it.
func WithEventLog(log observability.EventLog) ServerOption {
	return func(s *Server) {
		s.eventLog = log
	}
}

// WithVersion sets the version string reported by /health.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// New creates a gallery server over the given catalog. The catalog must
// already be loaded.
func New(cfg *models.GalleryConfig, log *logging.Logger, catalog storage.CatalogStoreManager, opts ...ServerOption) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log.Sub("gallery"),
		catalog:  catalog,
		selector: core.NewCatalogSelector(),
		version:  "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the full HTTP handler: routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return withMiddleware(mux, s.log, s.cfg.CORSOrigins)
}

// Start begins listening for HTTP connections. It blocks until the context
// is cancelled or the listener fails, and shuts down gracefully on cancel.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.ServerBind, s.cfg.ServerPort)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	if s.cfg.Watch {
		w, err := newCatalogWatcher(s.catalog, s.log)
		if err != nil {
			// The server is still useful without hot reload.
			s.log.Warn().Err(err).Msg("catalog watch disabled")
		} else {
			s.watcher = w
			go s.watcher.run(ctx)
		}
	}

	s.log.Info().Str("addr", addr).Msg("gallery server listening")
	observability.Record(s.eventLog, observability.EventServerStarted, map[string]any{"addr": addr})

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down gallery server: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gallery server: %w", err)
		}
		return nil
	}
}
