package handlers

import (
	"net/http"

	"github.com/aimasteryhub/backend/internal/middlewares"
)

// NewMeHandler returns an HTTP handler that echoes the authenticated user.
// @Summary Get current user
// @Description Returns the account resolved from the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /api/auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
