// Package server exposes the pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nadavc/scribeai/internal/pipeline"
)

// Pipeline is the single entry point the server consumes.
type Pipeline interface {
	Run(ctx context.Context, topic string, opts ...pipeline.Option) (string, error)
}

type Server struct {
	pipeline Pipeline
	logger   *slog.Logger
}

func New(p Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{pipeline: p, logger: logger}
}

// Router wires the HTTP surface: article generation, liveness, and service
// info.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleInfo).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/research", s.handleResearch).Methods(http.MethodPost)
	return r
}

type researchRequest struct {
	Topic string `json:"topic"`
}

type researchResponse struct {
	Topic   string `json:"topic"`
	Article string `json:"article"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	article, err := s.pipeline.Run(r.Context(), req.Topic)
	if err != nil {
		status := statusForError(err)
		s.logger.Error("research request failed", "topic", req.Topic, "status", status, "error", err)
		writeJSON(w, status, errorResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, researchResponse{Topic: req.Topic, Article: article})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "scribeai"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name": "scribeai research API",
		"endpoints": map[string]string{
			"POST /research": "Generate a research article on a topic",
			"GET /health":    "Health check",
		},
	})
}

// statusForError maps the pipeline error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case pipeline.HasKind(err, pipeline.KindInvalidInput):
		return http.StatusBadRequest
	case pipeline.HasKind(err, pipeline.KindNoResultsFound):
		return http.StatusUnprocessableEntity
	case pipeline.HasKind(err, pipeline.KindSearchUnavailable),
		pipeline.HasKind(err, pipeline.KindGenerationUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
