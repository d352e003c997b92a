package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// ProgressProvider defines the session-progress operations the handlers need.
type ProgressProvider interface {
	BySession(ctx context.Context, sessionID string) ([]models.UserProgress, error)
	Create(ctx context.Context, progress models.UserProgress) (models.UserProgress, error)
	Stats(ctx context.Context, sessionID string) (services.ProgressStats, error)
}

// ProgressRequest represents the JSON body for a day's progress
// swagger:model ProgressRequest
type ProgressRequest struct {
	// Anonymous session identifier
	// required: true
	SessionID string `json:"session_id"`

	// Date, YYYY-MM-DD
	// required: true
	Date string `json:"date"`

	// Titles learned that day
	LearnedInfo []string `json:"learned_info"`

	// Quiz score, omitted when no quiz was taken
	QuizScore *int `json:"quiz_score"`
}

// NewGetProgressHandler returns an HTTP handler for a session's records.
// @Summary Get session progress
// @Tags progress
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} models.UserProgress "Progress records"
// @Router /api/progress/{session_id} [get]
func NewGetProgressHandler(svc ProgressProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")

		records, err := svc.BySession(r.Context(), sessionID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if records == nil {
			records = []models.UserProgress{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// NewCreateProgressHandler returns an HTTP handler recording a day's progress.
// @Summary Record session progress
// @Tags progress
// @Accept json
// @Produce json
// @Param progressRequest body handlers.ProgressRequest true "Day's progress"
// @Success 201 {object} models.UserProgress "Stored record"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/progress [post]
func NewCreateProgressHandler(svc ProgressProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProgressRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.SessionID == "" || req.Date == "" {
			writeError(w, http.StatusBadRequest, "Session ID and date are required")
			return
		}

		created, err := svc.Create(r.Context(), models.UserProgress{
			SessionID:   req.SessionID,
			Date:        req.Date,
			LearnedInfo: models.EncodeStringList(req.LearnedInfo),
			QuizScore:   req.QuizScore,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewProgressStatsHandler returns an HTTP handler tallying a session's history.
// @Summary Session progress statistics
// @Tags progress
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} services.ProgressStats "Totals and average score"
// @Router /api/progress/{session_id}/stats [get]
func NewProgressStatsHandler(svc ProgressProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")

		stats, err := svc.Stats(r.Context(), sessionID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
