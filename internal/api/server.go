// Package api serves the layout pipeline over HTTP.
//
// The service accepts decks as JSON, runs them through the pipeline, and
// returns composed layouts with their validation reports. Long runs go
// through an asynchronous job flow: POST /v1/layouts answers 202 with a
// job ID, and clients poll GET /v1/jobs/{id} until the job completes.
// POST /v1/layouts/sync runs the pipeline inline for small decks.
//
// Archive endpoints are served only when an archive store is configured;
// without one they answer 501.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/neuradeck/slidekit/pkg/archive"
	"github.com/neuradeck/slidekit/pkg/jobs"
	"github.com/neuradeck/slidekit/pkg/pipeline"
)

const (
	// shutdownTimeout bounds how long a stopping server waits for
	// in-flight requests.
	shutdownTimeout = 10 * time.Second

	// readHeaderTimeout guards against slow-header clients.
	readHeaderTimeout = 10 * time.Second
)

// Config assembles a Server. Zero fields get working defaults; Archive
// is optional and nil disables the archive endpoints.
type Config struct {
	Runner  *pipeline.Runner
	Jobs    jobs.Store
	Archive archive.Store
	Logger  *log.Logger
	JobTTL  time.Duration

	// Options are the pipeline defaults applied to requests that do
	// not carry their own options.
	Options pipeline.Options
}

// Server handles layout requests over HTTP.
type Server struct {
	runner  *pipeline.Runner
	jobs    jobs.Store
	archive archive.Store
	logger  *log.Logger
	jobTTL  time.Duration
	opts    pipeline.Options
}

// New creates a server from the given configuration.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Jobs == nil {
		cfg.Jobs = jobs.NewMemoryStore()
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = jobs.DefaultTTL
	}
	return &Server{
		runner:  cfg.Runner,
		jobs:    cfg.Jobs,
		archive: cfg.Archive,
		logger:  cfg.Logger,
		jobTTL:  cfg.JobTTL,
		opts:    cfg.Options,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Post("/layouts/sync", s.handleSyncLayout)
		r.Get("/jobs/{id}", s.handleGetJob)
		r.Get("/themes", s.handleListThemes)
		r.Get("/themes/{id}", s.handleGetTheme)
		r.Post("/archive", s.handleSaveArchive)
		r.Get("/archive/{id}", s.handleGetArchive)
	})

	return r
}

// ListenAndServe serves the API on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("api listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
