package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
)

// ActivityLogStore defines the persistence operations for audit entries.
type ActivityLogStore interface {
	Append(ctx context.Context, entry models.ActivityLog) (string, error)
	ListOrdered(ctx context.Context) ([]models.ActivityLog, error)
	All(ctx context.Context) ([]models.ActivityLog, error)
	ClearAll(ctx context.Context) (int, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LogFilter selects audit entries. Empty fields match everything. The
// store supports only the primary recency sort server-side, so these
// filters are applied in process.
type LogFilter struct {
	LogType  string
	LogLevel string
	Username string
	Action   string
}

// Matches reports whether an entry passes the filter.
func (f LogFilter) Matches(entry models.ActivityLog) bool {
	if f.LogType != "" && entry.LogType != f.LogType {
		return false
	}
	if f.LogLevel != "" && entry.LogLevel != f.LogLevel {
		return false
	}
	if f.Username != "" && entry.Username != f.Username {
		return false
	}
	if f.Action != "" && entry.Action != f.Action {
		return false
	}
	return true
}

// ActivityStats is a full-scan tally of the audit trail.
type ActivityStats struct {
	Total   int            `json:"total_logs"`
	ByType  map[string]int `json:"log_types"`
	ByLevel map[string]int `json:"log_levels"`
}

// ActivityService owns the audit trail and its optional Kafka fan-out.
type ActivityService struct {
	repo        ActivityLogStore
	kafkaWriter KafkaWriter
}

// NewActivityService creates a new ActivityService. kafkaWriter may be nil,
// in which case entries are only persisted.
func NewActivityService(repo ActivityLogStore, kafkaWriter KafkaWriter) *ActivityService {
	return &ActivityService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
	}
}

// Record appends one entry best-effort. Any failure is logged and
// swallowed; the triggering operation must never observe it.
func (svc *ActivityService) Record(ctx context.Context, entry models.ActivityLog) {
	entry = withDefaults(entry)

	id, err := svc.repo.Append(ctx, entry)
	if err != nil {
		logger.Log.Errorw("failed to record activity", "action", entry.Action, "error", err)
		return
	}
	entry.ID = id
	svc.publish(ctx, entry)
}

// Create appends one entry and surfaces failures, for the explicit
// log-creation endpoint.
func (svc *ActivityService) Create(ctx context.Context, entry models.ActivityLog) (string, error) {
	entry = withDefaults(entry)

	id, err := svc.repo.Append(ctx, entry)
	if err != nil {
		logger.Log.Errorw("failed to create activity log", "action", entry.Action, "error", err)
		return "", err
	}
	entry.ID = id
	svc.publish(ctx, entry)
	return id, nil
}

// Query returns the filtered page of entries, newest first, together with
// the post-filter total. Pagination is applied last, on the filtered set.
func (svc *ActivityService) Query(ctx context.Context, filter LogFilter, skip, limit int) ([]models.ActivityLog, int, error) {
	all, err := svc.repo.ListOrdered(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]models.ActivityLog, 0, len(all))
	for _, entry := range all {
		if filter.Matches(entry) {
			filtered = append(filtered, entry)
		}
	}
	total := len(filtered)

	if skip < 0 {
		skip = 0
	}
	if skip >= total {
		return []models.ActivityLog{}, total, nil
	}
	end := total
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return filtered[skip:end], total, nil
}

// Stats tallies the whole audit trail by type and level.
func (svc *ActivityService) Stats(ctx context.Context) (ActivityStats, error) {
	all, err := svc.repo.All(ctx)
	if err != nil {
		return ActivityStats{}, err
	}

	stats := ActivityStats{
		Total:   len(all),
		ByType:  make(map[string]int),
		ByLevel: make(map[string]int),
	}
	for _, entry := range all {
		stats.ByType[entry.LogType]++
		stats.ByLevel[entry.LogLevel]++
	}
	return stats, nil
}

// Clear irreversibly deletes every entry and returns the count removed.
// Authorization is the caller's responsibility.
func (svc *ActivityService) Clear(ctx context.Context) (int, error) {
	return svc.repo.ClearAll(ctx)
}

// publish mirrors an entry to Kafka when a writer is configured. Failures
// are logged and swallowed, like the store write in Record.
func (svc *ActivityService) publish(ctx context.Context, entry models.ActivityLog) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity entry for kafka", "id", entry.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.ID),
		Value: data,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity entry to kafka", "id", entry.ID, "error", err)
	}
}

func withDefaults(entry models.ActivityLog) models.ActivityLog {
	if entry.LogType == "" {
		entry.LogType = models.LogTypeUser
	}
	if entry.LogLevel == "" {
		entry.LogLevel = models.LogLevelInfo
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return entry
}
