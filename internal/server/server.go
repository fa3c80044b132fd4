// Package server exposes stored automata over HTTP: whole-input runs, bulk
// tests, DOT export and resumable step-by-step debugging sessions.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/enetx/automaton"
	"github.com/enetx/automaton/store"
	"github.com/enetx/g"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the automaton API.
type Server struct {
	Store   store.Store
	Logger  *slog.Logger
	Metrics *Metrics

	registry *prometheus.Registry
	runs     *runRegistry
}

// DefaultRunTTL is how long an untouched debug run is kept.
const DefaultRunTTL = 30 * time.Minute

// Option configures a Server.
type Option func(*Server)

// WithRunTTL sets how long a debug run may go untouched before it is dropped.
// A non-positive ttl keeps runs until they are deleted.
func WithRunTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.runs.ttl = ttl
	}
}

// New creates a Server backed by st. Metrics are kept in a private registry
// exposed by the handler.
func New(st store.Store, logger *slog.Logger, opts ...Option) *Server {
	reg := prometheus.NewRegistry()

	s := &Server{
		Store:    st,
		Logger:   logger,
		Metrics:  NewMetrics(reg),
		registry: reg,
		runs:     newRunRegistry(DefaultRunTTL),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// InputRequest carries the input of a run.
type InputRequest struct {
	Input g.String `json:"input"`
}

// AcceptsResponse is the outcome of a whole-input run.
type AcceptsResponse struct {
	Accepted bool                `json:"accepted"`
	Status   automaton.RunStatus `json:"status"`
}

// Handler returns the HTTP handler. Metrics are served on metricsPath.
func (s *Server) Handler(metricsPath string) http.Handler {
	r := chi.NewRouter()

	r.Get("/automata", s.list)
	r.Route("/automata/{name}", func(r chi.Router) {
		r.Get("/", s.get)
		r.Put("/", s.put)
		r.Delete("/", s.delete)
		r.Post("/accepts", s.accepts)
		r.Post("/test", s.test)
		r.Get("/dot", s.dot)
		r.Post("/runs", s.startRun)
	})
	r.Route("/runs/{id}", func(r chi.Router) {
		r.Get("/", s.getRun)
		r.Post("/step", s.stepRun)
		r.Delete("/", s.deleteRun)
	})

	if metricsPath != "" {
		r.Handle(metricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "list failed", err)
		return
	}

	writeJSON(w, http.StatusOK, names)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) put(w http.ResponseWriter, r *http.Request) {
	var doc automaton.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid document", err)
		return
	}

	name := chi.URLParam(r, "name")
	if err := s.Store.Save(r.Context(), name, &doc); err != nil {
		s.fail(w, http.StatusInternalServerError, "save failed", err)
		return
	}

	s.Logger.Info("automaton saved", "name", name, "kind", doc.Kind)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, http.StatusInternalServerError, "delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) accepts(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	a, ok := s.build(w, r)
	if !ok {
		return
	}

	accepted := a.Accepts(req.Input)
	status := a.RunStatus()
	s.Metrics.finished(a.Kind(), status)

	writeJSON(w, http.StatusOK, AcceptsResponse{Accepted: accepted, Status: status})
}

// test runs the bulk tests given in the body, or the document's own tests
// when the body is empty.
func (s *Server) test(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w, r)
	if !ok {
		return
	}

	tests := doc.Tests

	var body automaton.Tests
	switch err := json.NewDecoder(r.Body).Decode(&body); {
	case err == nil:
		tests = body
	case !errors.Is(err, io.EOF):
		s.fail(w, http.StatusBadRequest, "invalid tests", err)
		return
	}

	a, err := doc.Build()
	if err != nil {
		s.fail(w, http.StatusUnprocessableEntity, "invalid automaton", err)
		return
	}

	report := automaton.BulkTest(a, tests)
	for _, c := range report.Cases {
		s.Metrics.finished(a.Kind(), c.Got)
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) dot(w http.ResponseWriter, r *http.Request) {
	a, ok := s.build(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if _, err := w.Write([]byte(a.ToDOT())); err != nil {
		s.Logger.Warn("dot write failed", "error", err)
	}
}

func (s *Server) startRun(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	a, ok := s.build(w, r)
	if !ok {
		return
	}

	rn := s.runs.start(chi.URLParam(r, "name"), a)
	if status := rn.engine.StepInit(req.Input); status.Terminal() {
		s.Metrics.finished(rn.engine.Kind(), status)
	}

	s.Logger.Debug("run started", "run", rn.id, "automaton", rn.name)
	writeJSON(w, http.StatusCreated, rn.view())
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.run(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, rn.view())
}

func (s *Server) stepRun(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.run(w, r)
	if !ok {
		return
	}

	// Finished runs are not stepped again, so each run is counted once.
	rn.engine.Do(func(a automaton.Automaton) {
		if a.RunStatus().Terminal() {
			return
		}

		s.Metrics.stepped(a.Kind())
		if status := a.Step(); status.Terminal() {
			s.Metrics.finished(a.Kind(), status)
		}
	})

	writeJSON(w, http.StatusOK, rn.view())
}

func (s *Server) deleteRun(w http.ResponseWriter, r *http.Request) {
	if !s.runs.remove(chi.URLParam(r, "id")) {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*automaton.Document, bool) {
	doc, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "automaton not found", http.StatusNotFound)
			return nil, false
		}

		s.fail(w, http.StatusInternalServerError, "load failed", err)
		return nil, false
	}

	return doc, true
}

func (s *Server) build(w http.ResponseWriter, r *http.Request) (automaton.Automaton, bool) {
	doc, ok := s.load(w, r)
	if !ok {
		return nil, false
	}

	a, err := doc.Build()
	if err != nil {
		s.fail(w, http.StatusUnprocessableEntity, "invalid automaton", err)
		return nil, false
	}

	return a, true
}

func (s *Server) run(w http.ResponseWriter, r *http.Request) (*run, bool) {
	rn, ok := s.runs.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
	}

	return rn, ok
}

func (s *Server) fail(w http.ResponseWriter, code int, msg string, err error) {
	if code >= http.StatusInternalServerError {
		s.Logger.Error(msg, "error", err)
	} else {
		s.Logger.Warn(msg, "error", err)
	}

	http.Error(w, msg+": "+err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
