package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

func TestActivityLogRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(store.NewMemoryStore())

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"login", "register", "login"} {
		_, err := repo.Append(ctx, models.ActivityLog{
			Action:    action,
			LogType:   models.LogTypeUser,
			LogLevel:  models.LogLevelSuccess,
			Username:  "alice",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
	}

	entries, err := repo.ListOrdered(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	// Newest first
	assert.Equal(t, "login", entries[0].Action)
	assert.True(t, entries[0].CreatedAt.After(entries[2].CreatedAt))
}

func TestActivityLogRepository_ClearAll(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(store.NewMemoryStore())

	for i := 0; i < 5; i++ {
		_, err := repo.Append(ctx, models.ActivityLog{
			Action:    "action",
			LogType:   models.LogTypeSystem,
			LogLevel:  models.LogLevelInfo,
			CreatedAt: time.Now().UTC(),
		})
		assert.NoError(t, err)
	}

	deleted, err := repo.ClearAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, deleted)

	entries, err := repo.All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
