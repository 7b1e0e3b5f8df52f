// Package server exposes the build → render pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz               build information
//	POST /api/{structure}       build and render a heap or bst (JSON body)
//	GET  /api/render            render a share token straight to an image
//	GET  /api/scenes/{key}      fetch a cached scene by key
//	POST /api/shares            store a state and return its ID and token
//	GET  /api/shares/{id}       load a stored state
//
// Errors are returned as JSON objects carrying the message and error code,
// with the status taken from [errors.HTTPStatus].
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/share"
)

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 1 << 20

	// requestTimeout bounds a single pipeline run.
	requestTimeout = 30 * time.Second

	shutdownTimeout = 10 * time.Second
)

// Server serves the API.
type Server struct {
	runner *pipeline.Runner
	shares share.Store
	logger *log.Logger
	router chi.Router
}

// New wires routes around runner and shares.
func New(runner *pipeline.Runner, shares share.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		shares: shares,
		logger: logger.WithPrefix("http"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/render", s.handleRenderToken)
		r.Get("/scenes/{key}", s.handleScene)
		r.Post("/shares", s.handleCreateShare)
		r.Get("/shares/{id}", s.handleGetShare)
		r.Post("/{structure}", s.handleBuild)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown", "err", err)
		return err
	}
	s.logger.Info("stopped", "addr", addr)
	return <-errc
}
