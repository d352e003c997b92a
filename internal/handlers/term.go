package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
)

// TermProvider defines the glossary operations the handlers need.
type TermProvider interface {
	List(ctx context.Context) ([]models.Term, error)
	Create(ctx context.Context, term models.Term) (models.Term, error)
}

// TermRequest represents the JSON body for a glossary entry
// swagger:model TermRequest
type TermRequest struct {
	// Term
	// required: true
	Term string `json:"term"`

	// Description
	// required: true
	Description string `json:"description"`

	// Category
	Category string `json:"category"`
}

// NewListTermsHandler returns an HTTP handler listing glossary entries.
// @Summary List glossary terms
// @Tags terms
// @Produce json
// @Success 200 {array} models.Term "Glossary entries"
// @Router /api/terms [get]
func NewListTermsHandler(svc TermProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if terms == nil {
			terms = []models.Term{}
		}
		writeJSON(w, http.StatusOK, terms)
	}
}

// NewCreateTermHandler returns an HTTP handler for adding a glossary entry.
// @Summary Create glossary term
// @Tags terms
// @Accept json
// @Produce json
// @Param termRequest body handlers.TermRequest true "Glossary entry"
// @Success 201 {object} models.Term "Stored entry"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/terms [post]
// @Security BearerAuth
func NewCreateTermHandler(svc TermProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TermRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Term == "" || req.Description == "" {
			writeError(w, http.StatusBadRequest, "Term and description are required")
			return
		}

		created, err := svc.Create(r.Context(), models.Term{
			Term:        req.Term,
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
