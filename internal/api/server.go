// internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"

	"support-responder/internal/common/config"
	"support-responder/internal/common/logger"
)

// respondRequestSchema validates the respond payload before it reaches
// the service. reply_to is optional; when present it must look like an
// email address.
const respondRequestSchema = `{
	"type": "object",
	"properties": {
		"query": {"type": "string", "minLength": 1},
		"reply_to": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"}
	},
	"required": ["query"],
	"additionalProperties": false
}`

type respondRequest struct {
	Query   string `json:"query"`
	ReplyTo string `json:"reply_to,omitempty"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Server exposes the responder over HTTP.
type Server struct {
	service *Service
	stats   *statsReader
	logger  logger.Logger
	schema  *gojsonschema.Schema
	http    *http.Server
}

// statsReader narrows the analytics dependency so the server builds
// without Redis in tests.
type statsReader struct {
	snapshot func(ctx context.Context) (map[string]int64, error)
	volume   func(ctx context.Context) (map[string]int64, error)
}

func NewServer(cfg config.ServerConfig, service *Service, log logger.Logger) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(respondRequestSchema))
	if err != nil {
		return nil, err
	}

	s := &Server{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "http"}),
		schema:  schema,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/respond", s.handleRespond)
	mux.HandleFunc("/api/v1/analytics/categories", s.handleAnalytics)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
	return s, nil
}

// WithSnapshot wires the analytics endpoint to a snapshot source.
func (s *Server) WithSnapshot(fn func(ctx context.Context) (map[string]int64, error)) *Server {
	if s.stats == nil {
		s.stats = &statsReader{}
	}
	s.stats.snapshot = fn
	return s
}

// WithDailyVolume adds a daily query-volume source to the analytics
// endpoint.
func (s *Server) WithDailyVolume(fn func(ctx context.Context) (map[string]int64, error)) *Server {
	if s.stats == nil {
		s.stats = &statsReader{}
	}
	s.stats.volume = fn
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", map[string]interface{}{"addr": s.http.Addr})
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed"})
		return
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request", Details: details})
		return
	}

	var req respondRequest
	raw, _ := json.Marshal(payload)
	_ = json.Unmarshal(raw, &req)

	requestID := uuid.NewString()
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query must not be blank"})
		return
	}

	response := s.service.Respond(r.Context(), requestID, req.Query, req.ReplyTo)
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	if s.stats == nil || s.stats.snapshot == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "analytics not enabled"})
		return
	}

	snapshot, err := s.stats.snapshot(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("analytics snapshot failed", nil)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "analytics unavailable"})
		return
	}

	body := map[string]interface{}{"categories": snapshot}
	if s.stats.volume != nil {
		volume, err := s.stats.volume(r.Context())
		if err != nil {
			s.logger.WithError(err).Error("analytics volume read failed", nil)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "analytics unavailable"})
			return
		}
		body["daily_volume"] = volume
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
