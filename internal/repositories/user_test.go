package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

func newUser(username, role string) models.User {
	return models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "$2a$10$fakefakefakefakefakefake",
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestUserRepositories_CreateAndRead(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	readRepo := NewUserReadRepository(s)
	writeRepo := NewUserWriteRepository(s)

	id, err := writeRepo.Create(ctx, newUser("alice", models.RoleUser))
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	byName, err := readRepo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, byName)
	assert.Equal(t, id, byName.ID)
	assert.Equal(t, "alice", byName.Username)
	assert.Equal(t, models.RoleUser, byName.Role)

	byID, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	missing, err := readRepo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = readRepo.GetByID(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserWriteRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	readRepo := NewUserReadRepository(s)
	writeRepo := NewUserWriteRepository(s)

	_, err := writeRepo.Create(ctx, newUser("alice", models.RoleUser))
	assert.NoError(t, err)

	_, err = writeRepo.Create(ctx, newUser("alice", models.RoleAdmin))
	assert.ErrorIs(t, err, store.ErrConflict)

	// User count unchanged after the failed attempt
	users, err := readRepo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserWriteRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	readRepo := NewUserReadRepository(s)
	writeRepo := NewUserWriteRepository(s)

	id, err := writeRepo.Create(ctx, newUser("bob", models.RoleUser))
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.Update(ctx, id, map[string]any{"role": models.RoleAdmin}))
	updated, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	assert.ErrorIs(t, writeRepo.Update(ctx, "missing", map[string]any{"role": "user"}), store.ErrNotFound)

	assert.NoError(t, writeRepo.Delete(ctx, id))
	gone, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, writeRepo.Delete(ctx, id), store.ErrNotFound)
}
