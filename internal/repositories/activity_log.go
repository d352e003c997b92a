package repositories

import (
	"context"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// ActivityLogsCollection is the document collection holding audit entries.
const ActivityLogsCollection = "activity_logs"

// ActivityLogRepository persists audit entries. Entries are append-only and
// only removed in bulk by ClearAll.
type ActivityLogRepository struct {
	store store.Store
}

func NewActivityLogRepository(s store.Store) *ActivityLogRepository {
	return &ActivityLogRepository{store: s}
}

// Append stores one entry and returns its ID.
func (r *ActivityLogRepository) Append(ctx context.Context, entry models.ActivityLog) (string, error) {
	id, err := r.store.Put(ctx, ActivityLogsCollection, entry.Fields())
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListOrdered returns all entries newest first. The store supports only a
// single sort key server-side; any further filtering happens in the caller.
func (r *ActivityLogRepository) ListOrdered(ctx context.Context) ([]models.ActivityLog, error) {
	docs, err := r.store.Query(ctx, ActivityLogsCollection, nil, "created_at")
	if err != nil {
		logger.Log.Errorw("failed to list activity logs", "error", err)
		return nil, err
	}
	entries := make([]models.ActivityLog, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.ActivityLogFromDocument(doc))
	}
	return entries, nil
}

// All returns every entry, unordered. Used for stat tallies.
func (r *ActivityLogRepository) All(ctx context.Context) ([]models.ActivityLog, error) {
	docs, err := r.store.StreamAll(ctx, ActivityLogsCollection)
	if err != nil {
		logger.Log.Errorw("failed to stream activity logs", "error", err)
		return nil, err
	}
	entries := make([]models.ActivityLog, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.ActivityLogFromDocument(doc))
	}
	return entries, nil
}

// ClearAll deletes every entry and returns how many were removed.
func (r *ActivityLogRepository) ClearAll(ctx context.Context) (int, error) {
	docs, err := r.store.StreamAll(ctx, ActivityLogsCollection)
	if err != nil {
		logger.Log.Errorw("failed to stream activity logs for clear", "error", err)
		return 0, err
	}

	deleted := 0
	for _, doc := range docs {
		if err := r.store.Delete(ctx, ActivityLogsCollection, doc.ID); err != nil {
			logger.Log.Errorw("failed to delete activity log", "id", doc.ID, "error", err)
			return deleted, err
		}
		deleted++
	}
	logger.Log.Infow("activity logs cleared", "deleted", deleted)
	return deleted, nil
}
