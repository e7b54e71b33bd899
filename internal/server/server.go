// Package server exposes the typings pipeline over HTTP.
//
// # Endpoints
//
//	POST /v1/typings   infer declarations, responds with a pipeline.Result
//	POST /v1/graph     dump the typing graph as DOT or SVG
//	GET  /healthz      liveness and build information
//
// Both POST endpoints accept a [Request]. Samples are given either as a
// JSON array in "samples" (each element is one sample) or as a list of
// "documents", each holding the text of one JSON or YAML file:
//
//	{
//	  "name": "Issue",
//	  "samples": [{"id": 1, "state": "open"}, {"id": 2}],
//	  "config": {"sort": true}
//	}
//
// Request configs are merged over the server settings; only fields set in
// the request win.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/pipeline"
)

// shutdownTimeout bounds the graceful shutdown of [Server.ListenAndServe].
const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	settings config.Settings
	logger   *log.Logger
	router   chi.Router
}

// New creates a server that runs requests through runner. settings
// provides the base render config, the root name and the server limits.
func New(runner *pipeline.Runner, settings config.Settings, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		settings: settings,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/typings", s.handleTypings)
		r.Post("/graph", s.handleGraph)
	})
	return r
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.settings.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.settings.Server.ReadTimeout.Duration,
		WriteTimeout: s.settings.Server.WriteTimeout.Duration,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
