package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRole is returned for a role outside {user, admin}.
	ErrInvalidRole = errors.New("invalid role")
	// ErrSelfDelete is returned when a caller tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
)

// DirectoryReader defines read operations used by user administration.
type DirectoryReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

// DirectoryWriter defines write operations used by user administration.
type DirectoryWriter interface {
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// UsersService provides administrative operations over the user directory.
// Role checks happen at the HTTP layer; this service trusts its caller.
type UsersService struct {
	reader   DirectoryReader
	writer   DirectoryWriter
	activity ActivityRecorder
}

// NewUsersService creates a new UsersService instance.
func NewUsersService(reader DirectoryReader, writer DirectoryWriter, activity ActivityRecorder) *UsersService {
	return &UsersService{
		reader:   reader,
		writer:   writer,
		activity: activity,
	}
}

// List returns every user account.
func (svc *UsersService) List(ctx context.Context) ([]models.User, error) {
	return svc.reader.GetAll(ctx)
}

// UpdateRole assigns a new role to a user.
func (svc *UsersService) UpdateRole(ctx context.Context, id, role string, actor models.User) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	err := svc.writer.Update(ctx, id, map[string]any{"role": role})
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:   "role_update",
		Details:  fmt.Sprintf("user %s role changed to %s", id, role),
		LogType:  models.LogTypeUser,
		LogLevel: models.LogLevelInfo,
		UserID:   actor.ID,
		Username: actor.Username,
	})
	return nil
}

// Delete removes a user account. Callers cannot delete themselves.
// Deleting the last admin is not prevented, matching the original system.
func (svc *UsersService) Delete(ctx context.Context, id string, actor models.User) error {
	if id == actor.ID {
		logger.Log.Warnw("self-delete refused", "id", id, "username", actor.Username)
		return ErrSelfDelete
	}

	err := svc.writer.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:   "user_delete",
		Details:  fmt.Sprintf("user %s deleted", id),
		LogType:  models.LogTypeUser,
		LogLevel: models.LogLevelWarning,
		UserID:   actor.ID,
		Username: actor.Username,
	})
	return nil
}
