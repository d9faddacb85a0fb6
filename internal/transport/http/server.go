package transporthttp

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventradar/internal/radar"
)

type Server struct {
	pipeline     *radar.Pipeline
	defaultLimit int
	ingest       *radar.IngestSource
}

func NewServer(pipeline *radar.Pipeline, defaultLimit int, ingest *radar.IngestSource) *Server {
	if defaultLimit <= 0 {
		defaultLimit = 30
	}
	return &Server{
		pipeline:     pipeline,
		defaultLimit: defaultLimit,
		ingest:       ingest,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/digest", s.handleDigest)
	mux.HandleFunc("/news", s.handleIngest)
	mux.HandleFunc("/swagger/openapi.yaml", serveSwaggerYAML)
	mux.HandleFunc("/swagger", serveSwaggerUI)
	mux.HandleFunc("/swagger/", serveSwaggerUI)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleDigest returns the current ranked candidate preview. It never
// mutates dedup state and never posts to the webhook; the scheduled run
// owns both.
func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	limit := s.defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	candidates := s.pipeline.Preview(ctx, limit)

	response := map[string]any{
		"as_of":      time.Now().UTC(),
		"candidates": candidates,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// nothing we can do; connection likely closed
	}
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.ingest == nil {
		s.writeError(w, http.StatusServiceUnavailable, "ingest disabled")
		return
	}

	var payload struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Link        string `json:"link"`
		Summary     string `json:"summary"`
		Source      string `json:"source"`
		PublishedAt string `json:"published_at"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if payload.Title == "" || payload.Link == "" {
		s.writeError(w, http.StatusBadRequest, "title and link are required")
		return
	}

	item := radar.Item{
		ID:      payload.ID,
		Title:   payload.Title,
		Link:    payload.Link,
		Summary: payload.Summary,
		Source:  defaultString(payload.Source, "ingest"),
	}
	if payload.PublishedAt != "" {
		ts, ok := radar.ParseWhen(payload.PublishedAt)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "published_at is not a recognised timestamp")
			return
		}
		item.PublishedAt = ts
	}

	stored := s.ingest.Add(item)

	response := map[string]any{
		"status":       "accepted",
		"id":           stored.ID,
		"published_at": stored.PublishedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(response)
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
