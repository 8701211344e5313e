package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/config"
	"github.com/seadex/seadex/internal/home"
	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/records"
	"github.com/seadex/seadex/internal/resultstore"
	"github.com/seadex/seadex/internal/server/endpoints"
	"github.com/seadex/seadex/internal/stats"
	"github.com/seadex/seadex/internal/storage"
	"github.com/seadex/seadex/internal/svcctx"
	"github.com/seadex/seadex/internal/vision"
)

// Server is the main Seadex HTTP server. It owns the records database
// lifecycle: opened on start, closed on shutdown.
type Server struct {
	httpServer  *http.Server
	configMgr   *config.Manager
	homeDir     *home.Dir
	logger      *slog.Logger
	pipeline    *recognition.Pipeline
	resultStore *resultstore.Store
	recordStore *records.Store
	imageStore  *storage.ImageStore
	statsRec    *stats.Recorder

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the seadex home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Transport overrides the vision transport; used by tests. When nil, a
	// vision client is built from configuration.
	Transport recognition.Transport
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		return nil, errors.New("home directory is required")
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	transport := cfg.Transport
	if transport == nil {
		transport = vision.NewClient(cfg.ConfigManager.Get().ToVisionConfig())
	}

	s := &Server{
		configMgr:   cfg.ConfigManager,
		homeDir:     cfg.Home,
		logger:      cfg.Logger,
		pipeline:    recognition.NewPipeline(transport, cfg.Logger),
		resultStore: resultstore.New(),
		imageStore:  storage.NewImageStore(cfg.Home.UploadsPath()),
		statsRec:    stats.NewRecorder(),
	}

	// A config edit swaps in a fresh vision client; in-flight calls keep the
	// old one.
	if cfg.Transport == nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			s.mu.Lock()
			s.pipeline = recognition.NewPipeline(vision.NewClient(c.ToVisionConfig()), s.logger)
			s.mu.Unlock()
			s.refreshServices()
			s.logger.Info("vision client reloaded from config")
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // Recognition calls wait on the upstream model
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start opens the records database and serves HTTP.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.homeDir.EnsureExists(); err != nil {
		s.setNotRunning()
		return err
	}

	s.logger.Info("opening records database", "path", s.homeDir.DatabasePath())
	store, err := records.Open(s.homeDir.DatabasePath())
	if err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to open records database: %w", err)
	}
	s.mu.Lock()
	s.recordStore = store
	s.mu.Unlock()
	s.refreshServices()

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = s.shutdown()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// refreshServices rebuilds the services struct handed to request contexts.
func (s *Server) refreshServices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = &svcctx.Services{
		Pipeline:    s.pipeline,
		ResultStore: s.resultStore,
		Records:     s.recordStore,
		Images:      s.imageStore,
		ConfigMgr:   s.configMgr,
		Stats:       s.statsRec,
		Logger:      s.logger,
		Home:        s.homeDir,
	}
}

// shutdown performs graceful shutdown of the HTTP server and closes the
// records database.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	if s.recordStore != nil {
		if err := s.recordStore.Close(); err != nil {
			s.logger.Error("records database close error", "error", err)
		}
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		services := s.services
		s.mu.RUnlock()

		ctx := r.Context()
		if services != nil {
			ctx = svcctx.WithServices(ctx, services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until the records database is open.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		ready := s.recordStore != nil
		s.mu.RUnlock()

		if !ready {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
