package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// defaultLogPageSize bounds unpaginated log queries.
const defaultLogPageSize = 100

// ActivityQuerier defines the audit-trail operations the handlers need.
type ActivityQuerier interface {
	Create(ctx context.Context, entry models.ActivityLog) (string, error)
	Query(ctx context.Context, filter services.LogFilter, skip, limit int) ([]models.ActivityLog, int, error)
	Stats(ctx context.Context) (services.ActivityStats, error)
	Clear(ctx context.Context) (int, error)
}

// CreateLogRequest represents the JSON body for an explicit log entry
// swagger:model CreateLogRequest
type CreateLogRequest struct {
	// Action name
	// required: true
	// default: page_view
	Action string `json:"action"`

	// Free-form details
	Details string `json:"details"`

	// Log type, one of: user, content, system
	LogType string `json:"log_type"`

	// Log level, one of: info, success, warning, error
	LogLevel string `json:"log_level"`

	// Related username
	Username string `json:"username"`

	// Anonymous session identifier
	SessionID string `json:"session_id"`
}

// CreateLogResponse represents a successful log creation
// swagger:model CreateLogResponse
type CreateLogResponse struct {
	// Stored entry ID
	ID string `json:"id"`
}

// LogsResponse represents one page of audit entries
// swagger:model LogsResponse
type LogsResponse struct {
	Logs  []models.ActivityLog `json:"logs"`
	Total int                  `json:"total"`
	Skip  int                  `json:"skip"`
	Limit int                  `json:"limit"`
}

// ClearLogsResponse reports how many entries were removed
// swagger:model ClearLogsResponse
type ClearLogsResponse struct {
	Deleted int    `json:"deleted"`
	Message string `json:"message"`
}

// NewCreateLogHandler returns an HTTP handler for recording an audit entry.
// @Summary Create activity log
// @Tags logs
// @Accept json
// @Produce json
// @Param createLogRequest body handlers.CreateLogRequest true "Log entry"
// @Success 201 {object} handlers.CreateLogResponse "Entry stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/logs [post]
// @Security BearerAuth
func NewCreateLogHandler(svc ActivityQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateLogRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Action == "" {
			writeError(w, http.StatusBadRequest, "Action is required")
			return
		}

		entry := models.ActivityLog{
			Action:    req.Action,
			Details:   req.Details,
			LogType:   req.LogType,
			LogLevel:  req.LogLevel,
			Username:  req.Username,
			SessionID: req.SessionID,
			IPAddress: r.RemoteAddr,
			UserAgent: r.UserAgent(),
			CreatedAt: time.Now().UTC(),
		}
		id, err := svc.Create(r.Context(), entry)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateLogResponse{ID: id})
	}
}

// NewQueryLogsHandler returns an HTTP handler for paging the audit trail.
// Filters apply before pagination; total counts the filtered set.
// @Summary Query activity logs
// @Tags logs
// @Produce json
// @Param log_type query string false "Filter by log type"
// @Param log_level query string false "Filter by log level"
// @Param username query string false "Filter by username"
// @Param action query string false "Filter by action"
// @Param skip query int false "Entries to skip"
// @Param limit query int false "Page size, default 100"
// @Success 200 {object} handlers.LogsResponse "Page of entries"
// @Failure 403 {object} handlers.ErrorResponse "Not enough permissions"
// @Router /api/logs [get]
// @Security BearerAuth
func NewQueryLogsHandler(svc ActivityQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := services.LogFilter{
			LogType:  query.Get("log_type"),
			LogLevel: query.Get("log_level"),
			Username: query.Get("username"),
			Action:   query.Get("action"),
		}
		skip := parseIntParam(query.Get("skip"), 0)
		limit := parseIntParam(query.Get("limit"), defaultLogPageSize)

		entries, total, err := svc.Query(r.Context(), filter, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, LogsResponse{
			Logs:  entries,
			Total: total,
			Skip:  skip,
			Limit: limit,
		})
	}
}

// NewLogStatsHandler returns an HTTP handler tallying the audit trail.
// @Summary Activity log statistics
// @Tags logs
// @Produce json
// @Success 200 {object} services.ActivityStats "Tally by type and level"
// @Failure 403 {object} handlers.ErrorResponse "Not enough permissions"
// @Router /api/logs/stats [get]
// @Security BearerAuth
func NewLogStatsHandler(svc ActivityQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewClearLogsHandler returns an HTTP handler that wipes the audit trail.
// @Summary Clear activity logs
// @Tags logs
// @Produce json
// @Success 200 {object} handlers.ClearLogsResponse "Entries removed"
// @Failure 403 {object} handlers.ErrorResponse "Not enough permissions"
// @Router /api/logs [delete]
// @Security BearerAuth
func NewClearLogsHandler(svc ActivityQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.Clear(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, ClearLogsResponse{
			Deleted: deleted,
			Message: "All logs cleared",
		})
	}
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
