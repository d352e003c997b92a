package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/password"
	"github.com/aimasteryhub/backend/internal/store"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
)

// UserReader defines read operations on user accounts.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserCreator defines the insert operation on user accounts.
type UserCreator interface {
	Create(ctx context.Context, user models.User) (string, error)
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// ActivityRecorder appends audit entries best-effort; it never reports
// failure to the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, entry models.ActivityLog)
}

// RequestMeta carries request attributes worth auditing.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AuthService handles registration, login and caller resolution.
type AuthService struct {
	reader   UserReader
	writer   UserCreator
	jwt      TokenIssuer
	activity ActivityRecorder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserCreator, jwt TokenIssuer, activity ActivityRecorder) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		activity: activity,
	}
}

// Register creates a new user account with a hashed password. The username
// is re-checked just before insert; the check-then-insert sequence is not
// atomic against the store, so the store's own uniqueness claim is the
// backstop.
func (svc *AuthService) Register(ctx context.Context, username, email, plainPassword, role string, meta RequestMeta) (models.User, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "error", err)
		return models.User{}, err
	}
	if existing != nil {
		logger.Log.Warnw("username already registered", "username", username)
		return models.User{}, ErrUsernameTaken
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return models.User{}, err
	}

	if role == "" {
		role = models.RoleUser
	}
	user := models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := svc.writer.Create(ctx, user)
	if errors.Is(err, store.ErrConflict) {
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		return models.User{}, err
	}
	user.ID = id

	svc.activity.Record(ctx, models.ActivityLog{
		Action:    "register",
		Details:   fmt.Sprintf("new user registered with role %s", user.Role),
		LogType:   models.LogTypeUser,
		LogLevel:  models.LogLevelInfo,
		UserID:    user.ID,
		Username:  user.Username,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return user, nil
}

// Login validates credentials and returns a bearer token with the user.
// An unknown username and a wrong password fail identically.
func (svc *AuthService) Login(ctx context.Context, username, plainPassword string, meta RequestMeta) (string, models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return "", models.User{}, err
	}
	if user == nil || !password.Verify(plainPassword, user.HashedPassword) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "username", username, "error", err)
		return "", models.User{}, err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:    "login",
		Details:   fmt.Sprintf("user logged in with role %s", user.Role),
		LogType:   models.LogTypeUser,
		LogLevel:  models.LogLevelSuccess,
		UserID:    user.ID,
		Username:  user.Username,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return token, *user, nil
}

// CurrentUser resolves the caller identity from a bearer token. A bad or
// expired token, or a subject that no longer exists, yields
// ErrUnauthenticated.
func (svc *AuthService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	subject, err := svc.jwt.GetSubject(ctx, tokenString)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	user, err := svc.reader.GetByUsername(ctx, subject)
	if err != nil {
		logger.Log.Errorw("failed to resolve token subject", "subject", subject, "error", err)
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, ErrUnauthenticated
	}
	return *user, nil
}
