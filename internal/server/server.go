package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fitforge/internal/generator"
	"github.com/claude/fitforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	synth  *generator.Synthesizer
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, synth *generator.Synthesizer, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		synth:  synth,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints (no auth — tsnet handles access)
		r.Get("/exercises", s.handleExerciseCatalog)
		r.Get("/exercises/history", s.handleExerciseHistory)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/{id}/logs", s.handleSessionLogs)

		// Mutating endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/plans/generate", s.handleGeneratePlan)
			r.Post("/templates", s.handleCreateTemplate)
			r.Put("/templates/{id}", s.handleUpdateTemplate)
			r.Delete("/templates/{id}", s.handleDeleteTemplate)
			r.Post("/templates/{id}/duplicate", s.handleDuplicateTemplate)
			r.Post("/sessions/start", s.handleStartSession)
			r.Post("/sessions/{id}/log", s.handleLogExercise)
			r.Post("/sessions/{id}/complete", s.handleCompleteSession)
		})
	})
}
