// Package server exposes the build persistence service over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/roach88/sango/internal/service"
)

type Server struct {
	router chi.Router
	svc    *service.Service
	log    *slog.Logger
}

// New wires the HTTP routes around an assembled service. A nil logger
// discards all output.
func New(svc *service.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		router: chi.NewRouter(),
		svc:    svc,
		log:    log,
	}
	srv.routes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(s.requestLog)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/u/{uid}/fetch", s.handleFetch)
	s.router.Get("/u/{uid}", s.handlePlayer)
	s.router.Get("/b/{id}", s.handleBuild)
	s.router.Get("/catalog/{kind}/{id}", s.handleCatalog)
}

// requestLog tags every request with an id and logs it on completion.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}
