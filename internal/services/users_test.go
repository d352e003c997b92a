package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/repositories"
	"github.com/aimasteryhub/backend/internal/store"
)

func newUsersFixture(t *testing.T) (*UsersService, *recorderStub, models.User, models.User) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemoryStore()
	writer := repositories.NewUserWriteRepository(st)
	reader := repositories.NewUserReadRepository(st)
	recorder := &recorderStub{}
	svc := NewUsersService(reader, writer, recorder)

	admin := models.User{Username: "admin", Role: models.RoleAdmin, CreatedAt: time.Now().UTC()}
	id, err := writer.Create(ctx, admin)
	assert.NoError(t, err)
	admin.ID = id

	member := models.User{Username: "member", Role: models.RoleUser, CreatedAt: time.Now().UTC()}
	id, err = writer.Create(ctx, member)
	assert.NoError(t, err)
	member.ID = id

	return svc, recorder, admin, member
}

func TestUsersService_List(t *testing.T) {
	svc, _, _, _ := newUsersFixture(t)

	users, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUsersService_UpdateRole(t *testing.T) {
	ctx := context.Background()
	svc, recorder, admin, member := newUsersFixture(t)

	assert.NoError(t, svc.UpdateRole(ctx, member.ID, models.RoleAdmin, admin))
	assert.Len(t, recorder.entries, 1)
	assert.Equal(t, "role_update", recorder.entries[0].Action)
	assert.Equal(t, admin.Username, recorder.entries[0].Username)

	assert.ErrorIs(t, svc.UpdateRole(ctx, member.ID, "superuser", admin), ErrInvalidRole)
	assert.ErrorIs(t, svc.UpdateRole(ctx, "missing", models.RoleUser, admin), ErrNotFound)
}

func TestUsersService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, recorder, admin, member := newUsersFixture(t)

	assert.ErrorIs(t, svc.Delete(ctx, admin.ID, admin), ErrSelfDelete)
	assert.Empty(t, recorder.entries)

	assert.NoError(t, svc.Delete(ctx, member.ID, admin))
	assert.Len(t, recorder.entries, 1)
	assert.Equal(t, "user_delete", recorder.entries[0].Action)
	assert.Equal(t, models.LogLevelWarning, recorder.entries[0].LogLevel)

	assert.ErrorIs(t, svc.Delete(ctx, member.ID, admin), ErrNotFound)
}
