package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"remember/internal/config"
	"remember/internal/store"
)

// Server is the remember HTTP API server.
type Server struct {
	db      *store.DB
	cfg     config.Config
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server with the given database, config, and version string.
func New(db *store.DB, cfg config.Config, version string) *Server {
	s := &Server{
		db:      db,
		cfg:     cfg,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/contacts", s.handleListContacts)
		r.Post("/contacts", s.handleCreateContact)
		r.Get("/contacts/{contactID}", s.handleGetContact)
		r.Put("/contacts/{contactID}", s.handleUpdateContact)
		r.Delete("/contacts/{contactID}", s.handleDeleteContact)

		r.Get("/contacts/{contactID}/interactions", s.handleListInteractions)
		r.Post("/contacts/{contactID}/interactions", s.handleAddInteraction)

		r.Get("/garden", s.handleGarden)
		r.Get("/garden.svg", s.handleGardenSVG)

		r.Get("/duplicates", s.handleDuplicates)
		r.Post("/merge/plan", s.handleMergePlan)
		r.Post("/merge", s.handleMerge)

		r.Post("/import/vcard", s.handleImportVCard)
		r.Get("/export/reminders.ics", s.handleReminderExport)
	})

	r.Get("/*", spaHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
