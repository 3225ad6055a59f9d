// Package apihandler exposes the orchestrator's Run operation over HTTP.
//
// Endpoints:
//
//	POST /api/v1/analyze – run a skill-gap analysis for a user/job pair
package apihandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerengine/careerengine/internal/apperrors"
	"github.com/careerengine/careerengine/internal/skillmodel"
)

// runner is the orchestrator's Run operation — the handler's sole
// collaborator (§4.1).
type runner interface {
	Run(ctx context.Context, userID, jobID string, policyOverrides map[string]any) (skillmodel.GapAnalysisResult, error)
}

// Handler holds the HTTP handler dependencies for the analysis API.
type Handler struct {
	orchestrator runner
	logger       zerolog.Logger
}

// NewHandler creates a new apihandler Handler.
func NewHandler(orchestrator runner, logger zerolog.Logger) *Handler {
	return &Handler{orchestrator: orchestrator, logger: logger}
}

// RegisterRoutes registers the analysis routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/analyze", h.withMiddleware(h.AnalyzeHandler))
}

// withMiddleware wraps a handler with logging and panic recovery.
func (h *Handler) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error().Interface("panic", rec).Msg("panic in apihandler")
				h.writeError(w, http.StatusInternalServerError,
					"an unexpected error occurred")
			}
		}()
		h.logger.Info().Str("method", r.Method).Str("path", r.URL.Path).Str("remote_addr", r.RemoteAddr).Msg("request received")
		next(w, r)
		h.logger.Info().Str("method", r.Method).Str("path", r.URL.Path).Dur("elapsed", time.Since(start)).Msg("request completed")
	}
}

// AnalyzeRequest is the POST /api/v1/analyze request body.
type AnalyzeRequest struct {
	UserID          string         `json:"user_id"`
	JobID           string         `json:"job_id"`
	PolicyOverrides map[string]any `json:"policy_overrides,omitempty"`
}

// AnalyzeResponse is the POST /api/v1/analyze response body.
type AnalyzeResponse struct {
	Success bool                           `json:"success"`
	Data    *skillmodel.GapAnalysisResult `json:"data,omitempty"`
	Error   string                         `json:"error,omitempty"`
}

// AnalyzeHandler handles POST /api/v1/analyze
//
// Request body (JSON):
//
//	{
//	  "user_id": "u-123",
//	  "job_id": "j-456",
//	  "policy_overrides": {"match_strategy.topk": 12}
//	}
//
// Response body (JSON):
//
//	{
//	  "success": true,
//	  "data": { "version": "1.0.0", "metrics": {"score": 7.14}, ... }
//	}
func (h *Handler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	var req AnalyzeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.JobID) == "" {
		h.writeError(w, http.StatusBadRequest, "user_id and job_id are both required")
		return
	}

	result, err := h.orchestrator.Run(r.Context(), req.UserID, req.JobID, req.PolicyOverrides)
	if err != nil {
		status, message := statusForErr(err)
		h.logger.Error().Err(err).Str("user_id", req.UserID).Str("job_id", req.JobID).Msg("analysis failed")
		h.writeError(w, status, message)
		return
	}

	h.writeJSON(w, http.StatusOK, AnalyzeResponse{Success: true, Data: &result})
}

// statusForErr maps a sentinel from internal/apperrors to the HTTP status
// and public message to surface (§6, §7). Input errors are "not ready"
// conditions rather than faults; extraction-pending is reported as still
// generating; an unavailable vector index is a 503; everything else is an
// unretried fault surfaced as a 500.
func statusForErr(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNoDefaultResume):
		return http.StatusNotFound, "no default resume on file for this user"
	case errors.Is(err, apperrors.ErrResumeMissing):
		return http.StatusNotFound, "resume text is missing"
	case errors.Is(err, apperrors.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, apperrors.ErrExtractionPending):
		return http.StatusAccepted, "analysis is still generating"
	case errors.Is(err, apperrors.ErrVectorIndexUnavailable):
		return http.StatusServiceUnavailable, "skill taxonomy index is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "an unexpected error occurred"
	}
}

// writeJSON serialises v as JSON and writes it to the response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes a structured error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, AnalyzeResponse{
		Success: false,
		Error:   message,
	})
}
