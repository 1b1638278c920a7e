package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . DigestRunner
//go:generate moq -out mocks/datastore.go -pkg mocks -skip-ensure -fmt goimports . Datastore

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	runner  DigestRunner
	store   Datastore
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// DigestRunner executes the digest pipeline for one request
type DigestRunner interface {
	Run(ctx context.Context, req digest.Request) (*digest.Result, error)
}

// Datastore persists recipients and generated digests
type Datastore interface {
	LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error)
	ListRecipients(ctx context.Context) ([]domain.Recipient, error)
	SaveRecipient(ctx context.Context, r *domain.Recipient) error
	SaveDigest(ctx context.Context, recipientID string, d *domain.MergedDigest) error
	LastDigest(ctx context.Context, recipientID string) (*domain.MergedDigest, error)
	ListDigests(ctx context.Context, recipientID string, limit int) ([]domain.MergedDigest, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, runner DigestRunner, store Datastore, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		runner:  runner,
		store:   store,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("briefwire", "briefwire", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // 10MB, document pools are large
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /digest", s.digestHandler)
		r.HandleFunc("GET /recipients", s.listRecipientsHandler)
		r.HandleFunc("POST /recipients", s.saveRecipientHandler)
		r.HandleFunc("GET /recipients/{id}", s.getRecipientHandler)
		r.HandleFunc("GET /recipients/{id}/digests", s.listDigestsHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
