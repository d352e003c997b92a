package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
)

// Tokener defines the minimal interface needed to extract a bearer token
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver turns a bearer token into the authenticated user
type UserResolver interface {
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

// AuthMiddleware returns a middleware that authenticates the request and
// stores the resolved user in the context for downstream handlers
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeDetail(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			user, err := resolver.CurrentUser(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeDetail(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// AdminMiddleware returns a middleware that rejects non-admin callers.
// It must run after AuthMiddleware.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok || user.Role != models.RoleAdmin {
				logger.Log.Warnw("admin access refused", "username", user.Username, "role", user.Role)
				writeDetail(w, http.StatusForbidden, "Not enough permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// userKeyType is an unexported type for keys in context
type userKeyType struct{}

var userKey = userKeyType{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
