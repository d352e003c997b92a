package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/repositories"
	"github.com/aimasteryhub/backend/internal/store"
)

// kafkaWriterStub captures published messages.
type kafkaWriterStub struct {
	messages []kafka.Message
	err      error
}

func (w *kafkaWriterStub) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *kafkaWriterStub) Close() error { return nil }

// failingLogStore rejects every append.
type failingLogStore struct{}

func (failingLogStore) Append(context.Context, models.ActivityLog) (string, error) {
	return "", errors.New("store down")
}
func (failingLogStore) ListOrdered(context.Context) ([]models.ActivityLog, error) { return nil, nil }
func (failingLogStore) All(context.Context) ([]models.ActivityLog, error)         { return nil, nil }
func (failingLogStore) ClearAll(context.Context) (int, error)                     { return 0, nil }

func seedActivityService(t *testing.T) (*ActivityService, *kafkaWriterStub) {
	t.Helper()
	ctx := context.Background()
	repo := repositories.NewActivityLogRepository(store.NewMemoryStore())
	writer := &kafkaWriterStub{}
	svc := NewActivityService(repo, writer)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.ActivityLog{
		{Action: "login", Username: "alice", LogType: models.LogTypeUser, LogLevel: models.LogLevelSuccess, CreatedAt: base},
		{Action: "login", Username: "bob", LogType: models.LogTypeUser, LogLevel: models.LogLevelSuccess, CreatedAt: base.Add(time.Minute)},
		{Action: "quiz_create", Username: "alice", LogType: models.LogTypeContent, LogLevel: models.LogLevelInfo, CreatedAt: base.Add(2 * time.Minute)},
		{Action: "user_delete", Username: "alice", LogType: models.LogTypeUser, LogLevel: models.LogLevelWarning, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, entry := range entries {
		_, err := svc.Create(ctx, entry)
		assert.NoError(t, err)
	}
	return svc, writer
}

func TestActivityService_Record_SwallowsFailures(t *testing.T) {
	svc := NewActivityService(failingLogStore{}, &kafkaWriterStub{})
	// Must not panic or surface the error anywhere.
	svc.Record(context.Background(), models.ActivityLog{Action: "login"})
}

func TestActivityService_Record_PublishesToKafka(t *testing.T) {
	repo := repositories.NewActivityLogRepository(store.NewMemoryStore())
	writer := &kafkaWriterStub{}
	svc := NewActivityService(repo, writer)

	svc.Record(context.Background(), models.ActivityLog{Action: "login", Username: "alice"})
	assert.Len(t, writer.messages, 1)
	assert.NotEmpty(t, writer.messages[0].Key)

	// A broken broker must not affect recording.
	writer.err = errors.New("broker down")
	svc.Record(context.Background(), models.ActivityLog{Action: "login"})
}

func TestActivityService_Record_NilWriter(t *testing.T) {
	repo := repositories.NewActivityLogRepository(store.NewMemoryStore())
	svc := NewActivityService(repo, nil)
	svc.Record(context.Background(), models.ActivityLog{Action: "login"})

	_, total, err := svc.Query(context.Background(), LogFilter{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestActivityService_Query(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedActivityService(t)

	tests := []struct {
		name      string
		filter    LogFilter
		skip      int
		limit     int
		wantTotal int
		wantLen   int
		wantFirst string
	}{
		{"all newest first", LogFilter{}, 0, 100, 4, 4, "user_delete"},
		{"filter by username", LogFilter{Username: "alice"}, 0, 100, 3, 3, "user_delete"},
		{"filter by type", LogFilter{LogType: models.LogTypeContent}, 0, 100, 1, 1, "quiz_create"},
		{"filter by level", LogFilter{LogLevel: models.LogLevelSuccess}, 0, 100, 2, 2, "login"},
		{"filter by action", LogFilter{Action: "login"}, 0, 100, 2, 2, "login"},
		{"pagination window", LogFilter{}, 1, 2, 4, 2, "quiz_create"},
		{"skip past end", LogFilter{}, 10, 100, 4, 0, ""},
		{"total counts post-filter", LogFilter{Username: "bob"}, 0, 1, 1, 1, "login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, total, err := svc.Query(ctx, tt.filter, tt.skip, tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, entries, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, entries[0].Action)
			}
		})
	}
}

func TestActivityService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedActivityService(t)

	stats, err := svc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.ByType[models.LogTypeUser])
	assert.Equal(t, 1, stats.ByType[models.LogTypeContent])
	assert.Equal(t, 2, stats.ByLevel[models.LogLevelSuccess])
	assert.Equal(t, 1, stats.ByLevel[models.LogLevelWarning])
}

func TestActivityService_Clear(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedActivityService(t)

	deleted, err := svc.Clear(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4, deleted)

	_, total, err := svc.Query(ctx, LogFilter{}, 0, 0)
	assert.NoError(t, err)
	assert.Zero(t, total)
}
