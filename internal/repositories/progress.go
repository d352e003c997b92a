package repositories

import (
	"context"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// ProgressCollection is the document collection holding session progress.
const ProgressCollection = "user_progress"

// ProgressRepository persists per-session learning progress.
type ProgressRepository struct {
	store store.Store
}

func NewProgressRepository(s store.Store) *ProgressRepository {
	return &ProgressRepository{store: s}
}

// GetBySession returns every progress record for a session.
func (r *ProgressRepository) GetBySession(ctx context.Context, sessionID string) ([]models.UserProgress, error) {
	docs, err := r.store.Query(ctx, ProgressCollection, &store.Filter{Field: "session_id", Value: sessionID}, "")
	if err != nil {
		logger.Log.Errorw("failed to query user progress", "session_id", sessionID, "error", err)
		return nil, err
	}
	progress := make([]models.UserProgress, 0, len(docs))
	for _, doc := range docs {
		progress = append(progress, models.UserProgressFromDocument(doc))
	}
	return progress, nil
}

// Create stores a progress record and returns it with the assigned ID.
func (r *ProgressRepository) Create(ctx context.Context, progress models.UserProgress) (models.UserProgress, error) {
	id, err := r.store.Put(ctx, ProgressCollection, progress.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create user progress", "session_id", progress.SessionID, "error", err)
		return models.UserProgress{}, err
	}
	progress.ID = id
	return progress, nil
}
