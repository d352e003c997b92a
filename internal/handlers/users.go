package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/middlewares"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// UserAdmin defines the administrative user operations the handlers need.
type UserAdmin interface {
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id, role string, actor models.User) error
	Delete(ctx context.Context, id string, actor models.User) error
}

// UpdateRoleRequest represents the JSON body for a role change
// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	// New role, one of: user, admin
	// required: true
	// default: admin
	Role string `json:"role"`
}

// MessageResponse represents a generic confirmation response
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	Message string `json:"message"`
}

// NewListUsersHandler returns an HTTP handler listing every account.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User "All user accounts"
// @Failure 403 {object} handlers.ErrorResponse "Not enough permissions"
// @Router /api/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewUpdateUserRoleHandler returns an HTTP handler for changing a user's role.
// @Summary Update user role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateRoleRequest body handlers.UpdateRoleRequest true "New role"
// @Success 200 {object} handlers.MessageResponse "Role updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid role"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id}/role [put]
// @Security BearerAuth
func NewUpdateUserRoleHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		actor, _ := middlewares.GetUserFromContext(r.Context())
		err := svc.UpdateRole(r.Context(), id, req.Role, actor)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRole):
				writeError(w, http.StatusBadRequest, "Invalid role")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Role updated successfully"})
	}
}

// NewDeleteUserHandler returns an HTTP handler for deleting an account.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Cannot delete your own account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		actor, _ := middlewares.GetUserFromContext(r.Context())
		err := svc.Delete(r.Context(), id, actor)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfDelete):
				writeError(w, http.StatusBadRequest, "Cannot delete your own account")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
