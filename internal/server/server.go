// Package server exposes the analysis pipeline over HTTP: dataset upload,
// aggregated summary with insight and commentary, and per-session chat.
// Chart rendering stays with the caller; this layer serves the data.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/accucheck/accucheck-cli/internal/analysis"
	"github.com/accucheck/accucheck-cli/internal/commentary"
	"github.com/accucheck/accucheck-cli/internal/dataset"
	"github.com/accucheck/accucheck-cli/internal/pipeline"
	"github.com/accucheck/accucheck-cli/internal/session"
)

// Server owns the live sessions. Each session is used by one dashboard at a
// time; the per-entry mutex serializes chat turns the way the UI would.
type Server struct {
	log *zap.Logger
	com *commentary.Commentator

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	sess    *session.Session
	summary *analysis.Summary
	insight *analysis.Insight
}

// New creates a Server backed by the given commentator.
func New(log *zap.Logger, com *commentary.Commentator) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log, com: com, sessions: map[string]*entry{}}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Post("/datasets", s.handleDataset)
		r.Get("/sessions/{id}", s.handleTranscript)
		r.Post("/sessions/{id}/turns", s.handleTurn)
		r.Delete("/sessions/{id}", s.handleReset)
	})
	return r
}

type datasetRequest struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

type datasetResponse struct {
	SessionID  string            `json:"session_id,omitempty"`
	Summary    *analysis.Summary `json:"summary,omitempty"`
	Insight    *analysis.Insight `json:"insight,omitempty"`
	Commentary string            `json:"commentary,omitempty"`
	Note       string            `json:"note,omitempty"`
}

// handleDataset accepts a table as text/csv or as a JSON header/rows pair,
// runs the pipeline, and opens a chat session seeded with the commentary.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDataset(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := pipeline.Run(r.Context(), d, s.com)
	if err != nil {
		var missing *dataset.MissingColumnsError
		if errors.As(err, &missing) {
			validationFailures.Inc()
			s.log.Info("dataset rejected", zap.Strings("missing_columns", missing.Columns))
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":           missing.Error(),
				"missing_columns": missing.Columns,
			})
			return
		}
		var empty *analysis.EmptyDatasetError
		if errors.As(err, &empty) {
			writeJSON(w, http.StatusOK, datasetResponse{Note: "dataset has no rows; nothing to aggregate"})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	s.sessions[res.Session.ID()] = &entry{sess: res.Session, summary: res.Summary, insight: res.Insight}
	s.mu.Unlock()
	datasetsTotal.Inc()
	s.log.Info("dataset analyzed",
		zap.String("session_id", res.Session.ID()),
		zap.Int("regions", len(res.Summary.Rows)),
		zap.Int("skipped_cells", res.Summary.SkippedCells),
	)

	writeJSON(w, http.StatusCreated, datasetResponse{
		SessionID:  res.Session.ID(),
		Summary:    res.Summary,
		Insight:    res.Insight,
		Commentary: res.Commentary,
	})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": e.sess.ID(),
		"summary":    e.summary,
		"insight":    e.insight,
		"transcript": e.sess.Transcript(),
	})
}

type turnRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	reply, err := e.sess.Submit(r.Context(), req.Message)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	chatTurns.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"reply":          reply,
		"transcript_len": e.sess.Len(),
	})
}

// handleReset drops a session, the server-side equivalent of uploading a new
// dataset in the dashboard.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	e.mu.Lock()
	e.sess.Reset()
	e.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(id string) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	return e, ok
}

func decodeDataset(r *http.Request) (*dataset.Dataset, error) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "text/csv"), strings.HasPrefix(ct, "text/plain"):
		return dataset.ReadCSV(r.Body, dataset.DefaultOptions())
	default:
		var req datasetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
		return &dataset.Dataset{Name: req.Name, Header: req.Header, Rows: req.Rows}, nil
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
