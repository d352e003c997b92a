package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// AIInfoProvider defines the daily-info operations the handlers need.
type AIInfoProvider interface {
	ItemsByDate(ctx context.Context, date string) ([]models.AIInfoItem, error)
	Create(ctx context.Context, info models.AIInfo) error
	Delete(ctx context.Context, date string) error
	Dates(ctx context.Context) ([]string, error)
}

// CreateAIInfoRequest represents the JSON body for a day's info entries
// swagger:model CreateAIInfoRequest
type CreateAIInfoRequest struct {
	// Date key, YYYY-MM-DD
	// required: true
	Date string `json:"date"`

	Info1Title   string   `json:"info1_title"`
	Info1Content string   `json:"info1_content"`
	Info1Terms   []string `json:"info1_terms"`
	Info2Title   string   `json:"info2_title"`
	Info2Content string   `json:"info2_content"`
	Info2Terms   []string `json:"info2_terms"`
	Info3Title   string   `json:"info3_title"`
	Info3Content string   `json:"info3_content"`
	Info3Terms   []string `json:"info3_terms"`
}

// AIInfoResponse represents a day's expanded info entries
// swagger:model AIInfoResponse
type AIInfoResponse struct {
	Date  string              `json:"date"`
	Items []models.AIInfoItem `json:"items"`
}

// NewGetAIInfoHandler returns an HTTP handler for a day's info entries.
// An unpopulated date yields an empty list.
// @Summary Get AI info by date
// @Tags ai-info
// @Produce json
// @Param date path string true "Date, YYYY-MM-DD"
// @Success 200 {object} handlers.AIInfoResponse "Info entries for the date"
// @Router /api/ai-info/{date} [get]
func NewGetAIInfoHandler(svc AIInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		items, err := svc.ItemsByDate(r.Context(), date)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, AIInfoResponse{Date: date, Items: items})
	}
}

// NewListAIInfoDatesHandler returns an HTTP handler listing populated dates.
// @Summary List AI info dates
// @Tags ai-info
// @Produce json
// @Success 200 {array} string "Populated dates, newest first"
// @Router /api/ai-info [get]
func NewListAIInfoDatesHandler(svc AIInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := svc.Dates(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if dates == nil {
			dates = []string{}
		}
		writeJSON(w, http.StatusOK, dates)
	}
}

// NewCreateAIInfoHandler returns an HTTP handler for adding a day's entries.
// @Summary Create AI info
// @Tags ai-info
// @Accept json
// @Produce json
// @Param createAIInfoRequest body handlers.CreateAIInfoRequest true "Day's info entries"
// @Success 201 {object} handlers.MessageResponse "Entries stored"
// @Failure 400 {object} handlers.ErrorResponse "Date already populated / invalid request"
// @Router /api/ai-info [post]
// @Security BearerAuth
func NewCreateAIInfoHandler(svc AIInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAIInfoRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Date == "" {
			writeError(w, http.StatusBadRequest, "Date is required")
			return
		}

		info := models.AIInfo{
			Date:         req.Date,
			Info1Title:   req.Info1Title,
			Info1Content: req.Info1Content,
			Info1Terms:   models.EncodeStringList(req.Info1Terms),
			Info2Title:   req.Info2Title,
			Info2Content: req.Info2Content,
			Info2Terms:   models.EncodeStringList(req.Info2Terms),
			Info3Title:   req.Info3Title,
			Info3Content: req.Info3Content,
			Info3Terms:   models.EncodeStringList(req.Info3Terms),
		}
		err := svc.Create(r.Context(), info)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyExists):
				writeError(w, http.StatusBadRequest, "AI info already exists for this date")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "AI info created successfully"})
	}
}

// NewDeleteAIInfoHandler returns an HTTP handler removing a day's entries.
// @Summary Delete AI info
// @Tags ai-info
// @Produce json
// @Param date path string true "Date, YYYY-MM-DD"
// @Success 200 {object} handlers.MessageResponse "Entries removed"
// @Failure 404 {object} handlers.ErrorResponse "Date not found"
// @Router /api/ai-info/{date} [delete]
// @Security BearerAuth
func NewDeleteAIInfoHandler(svc AIInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		err := svc.Delete(r.Context(), date)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "AI info not found for this date")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "AI info deleted successfully"})
	}
}
