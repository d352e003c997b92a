package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string, meta services.RequestMeta) (string, models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for subsequent requests
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`

	// Authenticated user
	User models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Validates credentials and returns a bearer token. Unknown usernames and wrong passwords fail identically.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "Token and user"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect username or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		meta := services.RequestMeta{
			IPAddress: r.RemoteAddr,
			UserAgent: r.UserAgent(),
		}
		token, user, err := svc.Login(r.Context(), req.Username, req.Password, meta)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Incorrect username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        user,
		})
	}
}
