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

// PromptProvider defines the prompt operations the handlers need.
type PromptProvider interface {
	List(ctx context.Context) ([]models.Prompt, error)
	ByCategory(ctx context.Context, category string) ([]models.Prompt, error)
	Create(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	Update(ctx context.Context, id string, prompt models.Prompt) (models.Prompt, error)
	Delete(ctx context.Context, id string) error
}

// PromptRequest represents the JSON body for a prompt snippet
// swagger:model PromptRequest
type PromptRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Prompt text
	// required: true
	Content string `json:"content"`

	// Category
	Category string `json:"category"`
}

// NewListPromptsHandler returns an HTTP handler listing prompts, newest first.
// An optional category query narrows the result.
// @Summary List prompts
// @Tags prompts
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.Prompt "Prompt snippets"
// @Router /api/prompts [get]
func NewListPromptsHandler(svc PromptProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			prompts []models.Prompt
			err     error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			prompts, err = svc.ByCategory(r.Context(), category)
		} else {
			prompts, err = svc.List(r.Context())
		}
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if prompts == nil {
			prompts = []models.Prompt{}
		}
		writeJSON(w, http.StatusOK, prompts)
	}
}

// NewCreatePromptHandler returns an HTTP handler for adding a prompt.
// @Summary Create prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param promptRequest body handlers.PromptRequest true "Prompt snippet"
// @Success 201 {object} models.Prompt "Stored prompt"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/prompts [post]
// @Security BearerAuth
func NewCreatePromptHandler(svc PromptProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PromptRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Content == "" {
			writeError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		created, err := svc.Create(r.Context(), models.Prompt{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdatePromptHandler returns an HTTP handler for editing a prompt.
// @Summary Update prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param promptRequest body handlers.PromptRequest true "New prompt content"
// @Success 200 {object} models.Prompt "Updated prompt"
// @Failure 404 {object} handlers.ErrorResponse "Prompt not found"
// @Router /api/prompts/{id} [put]
// @Security BearerAuth
func NewUpdatePromptHandler(svc PromptProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req PromptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := svc.Update(r.Context(), id, models.Prompt{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Prompt not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeletePromptHandler returns an HTTP handler for removing a prompt.
// @Summary Delete prompt
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} handlers.MessageResponse "Prompt removed"
// @Failure 404 {object} handlers.ErrorResponse "Prompt not found"
// @Router /api/prompts/{id} [delete]
// @Security BearerAuth
func NewDeletePromptHandler(svc PromptProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Prompt not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Prompt deleted successfully"})
	}
}
