package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds the HTTP API state.
type Server struct {
	version string
	timeout time.Duration
}

// New creates a server instance. The timeout bounds each request through
// the chi timeout middleware.
func New(version string, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Server{version: version, timeout: timeout}
}

// Router builds the chi router with middleware and all API routes mounted
// under /api/v1.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(s.timeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/info", s.handleInfo)
		r.Get("/convert", s.handleConvert)
		r.Post("/clip", s.handleClip)
	})

	return r
}
