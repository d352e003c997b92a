package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
)

// BaseContentProvider defines the static-article operations the handlers need.
type BaseContentProvider interface {
	List(ctx context.Context) ([]models.BaseContent, error)
	Create(ctx context.Context, content models.BaseContent) (models.BaseContent, error)
}

// BaseContentRequest represents the JSON body for a static article
// swagger:model BaseContentRequest
type BaseContentRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Article body
	// required: true
	Content string `json:"content"`

	// Category
	Category string `json:"category"`
}

// NewListBaseContentHandler returns an HTTP handler listing static articles.
// @Summary List base content
// @Tags content
// @Produce json
// @Success 200 {array} models.BaseContent "Static articles"
// @Router /api/base-content [get]
func NewListBaseContentHandler(svc BaseContentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if content == nil {
			content = []models.BaseContent{}
		}
		writeJSON(w, http.StatusOK, content)
	}
}

// NewCreateBaseContentHandler returns an HTTP handler for adding an article.
// @Summary Create base content
// @Tags content
// @Accept json
// @Produce json
// @Param baseContentRequest body handlers.BaseContentRequest true "Static article"
// @Success 201 {object} models.BaseContent "Stored article"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/base-content [post]
// @Security BearerAuth
func NewCreateBaseContentHandler(svc BaseContentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BaseContentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Content == "" {
			writeError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		created, err := svc.Create(r.Context(), models.BaseContent{
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
