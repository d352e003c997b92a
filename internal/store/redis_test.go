package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	s := NewRedisStore(rdb, WithUniqueField("users", "username"))
	assert.NoError(t, s.Ping(ctx))

	t.Run("Put, Get, Update, Delete", func(t *testing.T) {
		id, err := s.Put(ctx, "prompt", map[string]any{"title": "p1", "category": "coding"})
		assert.NoError(t, err)
		assert.NotEmpty(t, id)

		doc, err := s.Get(ctx, "prompt", id)
		assert.NoError(t, err)
		assert.Equal(t, "p1", doc.Fields["title"])

		assert.NoError(t, s.Update(ctx, "prompt", id, map[string]any{"title": "p2"}))
		doc, err = s.Get(ctx, "prompt", id)
		assert.NoError(t, err)
		assert.Equal(t, "p2", doc.Fields["title"])
		assert.Equal(t, "coding", doc.Fields["category"])

		assert.NoError(t, s.Delete(ctx, "prompt", id))
		_, err = s.Get(ctx, "prompt", id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutUnique claims and releases", func(t *testing.T) {
		id, err := s.PutUnique(ctx, "users", "username", map[string]any{"username": "alice"})
		assert.NoError(t, err)

		_, err = s.PutUnique(ctx, "users", "username", map[string]any{"username": "alice"})
		assert.ErrorIs(t, err, ErrConflict)

		// Deleting the document releases the claim
		assert.NoError(t, s.Delete(ctx, "users", id))
		_, err = s.PutUnique(ctx, "users", "username", map[string]any{"username": "alice"})
		assert.NoError(t, err)
	})

	t.Run("Set ifAbsent", func(t *testing.T) {
		assert.NoError(t, s.Set(ctx, "ai_info", "2024-05-01", map[string]any{"date": "2024-05-01"}, true))
		assert.ErrorIs(t, s.Set(ctx, "ai_info", "2024-05-01", map[string]any{"date": "2024-05-01"}, true), ErrConflict)
	})

	t.Run("Query with filter and order", func(t *testing.T) {
		_, err := s.Put(ctx, "logs", map[string]any{"log_type": "user", "created_at": "2024-05-01T10:00:00Z"})
		assert.NoError(t, err)
		_, err = s.Put(ctx, "logs", map[string]any{"log_type": "system", "created_at": "2024-05-02T10:00:00Z"})
		assert.NoError(t, err)

		docs, err := s.Query(ctx, "logs", &Filter{Field: "log_type", Value: "user"}, "created_at")
		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.Equal(t, "user", docs[0].Fields["log_type"])

		all, err := s.StreamAll(ctx, "logs")
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
