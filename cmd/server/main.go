package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/renocalc/internal/config"
	"github.com/Simplici0/renocalc/internal/derive"
	"github.com/Simplici0/renocalc/internal/fields"
	"github.com/Simplici0/renocalc/internal/session"
)

// server owns the single estimate session. Requests are serialised so each
// write sees the result of the previous one.
type server struct {
	mu      sync.Mutex
	session *session.Session
}

type fieldSection struct {
	Section fields.Section `json:"section"`
	Fields  []fields.Spec  `json:"fields"`
}

func main() {
	cfg := config.Load()

	srv := &server{session: session.New(cfg.Workflow, cfg.Master)}
	log.Printf("estimator ready: workflow=%s room=%vsf ceiling=%vft scope=%s",
		cfg.Workflow, cfg.Master.RoomSize, cfg.Master.CeilingHeight, cfg.Master.Scope)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/estimate", s.handleEstimate)
	r.Get("/estimate/text", s.handleEstimateText)
	r.Get("/fields", s.handleFieldSpecs)
	r.Post("/fields/{id}", s.handleSetField)
	r.Post("/master/{name}", s.handleSetMaster)
	r.Post("/workflow", s.handleSetWorkflow)
	return r
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *server) handleEstimateText(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(renderSummary(snap)))
}

func (s *server) handleFieldSpecs(w http.ResponseWriter, r *http.Request) {
	grouped := fields.Sections()
	out := make([]fieldSection, 0, len(fields.SectionOrder))
	for _, name := range fields.SectionOrder {
		out = append(out, fieldSection{Section: name, Fields: grouped[name]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleSetField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := fields.ID(chi.URLParam(r, "id"))
	value := fields.Parse(r.FormValue("value"))

	s.mu.Lock()
	snap, err := s.session.SetField(id, value)
	s.mu.Unlock()

	switch {
	case errors.Is(err, fields.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, fields.ErrReadOnly):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		http.Error(w, "failed to set field", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *server) handleSetMaster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	snap, err := s.session.SetMasterParameter(chi.URLParam(r, "name"), r.FormValue("value"))
	s.mu.Unlock()

	switch {
	case errors.Is(err, session.ErrUnknownParameter):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, derive.ErrUnknownScope):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		http.Error(w, "failed to set master parameter", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *server) handleSetWorkflow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	snap, err := s.session.SetActiveWorkflow(r.FormValue("workflow"))
	s.mu.Unlock()

	if errors.Is(err, derive.ErrUnknownWorkflow) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "failed to set workflow", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
