package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aimasteryhub/backend/internal/logger"
)

// SystemProvider defines the operational checks the handlers need.
type SystemProvider interface {
	Healthy(ctx context.Context) bool
	AdminStats(ctx context.Context) (map[string]int, error)
}

// RootResponse identifies the service
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse reports store reachability
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminStatsResponse carries per-collection document counts
// swagger:model AdminStatsResponse
type AdminStatsResponse struct {
	Collections map[string]int `json:"collections"`
	Timestamp   time.Time      `json:"timestamp"`
}

// NewRootHandler returns an HTTP handler identifying the service.
// @Summary Service root
// @Tags system
// @Produce json
// @Success 200 {object} handlers.RootResponse "Service identity"
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "AI Mastery Hub API",
			Version: version,
		})
	}
}

// NewHealthHandler returns an HTTP handler probing the document store.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Store reachable"
// @Failure 503 {object} handlers.HealthResponse "Store unreachable"
// @Router /health [get]
func NewHealthHandler(svc SystemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !svc.Healthy(r.Context()) {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "unhealthy",
				Timestamp: time.Now().UTC(),
			})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	}
}

// NewAdminStatsHandler returns an HTTP handler counting collection sizes.
// @Summary Admin statistics
// @Tags system
// @Produce json
// @Success 200 {object} handlers.AdminStatsResponse "Per-collection counts"
// @Failure 403 {object} handlers.ErrorResponse "Not enough permissions"
// @Router /api/admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc SystemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.AdminStats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, AdminStatsResponse{
			Collections: counts,
			Timestamp:   time.Now().UTC(),
		})
	}
}
