package services

import (
	"context"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/repositories"
	"github.com/aimasteryhub/backend/internal/store"
)

// SystemStore is the slice of the document store used for health checks
// and collection tallies.
type SystemStore interface {
	StreamAll(ctx context.Context, collection string) ([]store.Document, error)
	Ping(ctx context.Context) error
}

// SystemService reports operational state of the backend.
type SystemService struct {
	store SystemStore
}

func NewSystemService(s SystemStore) *SystemService {
	return &SystemService{store: s}
}

// Healthy reports whether the document store is reachable.
func (svc *SystemService) Healthy(ctx context.Context) bool {
	if err := svc.store.Ping(ctx); err != nil {
		logger.Log.Errorw("store ping failed", "error", err)
		return false
	}
	return true
}

// AdminStats counts the documents in each primary collection.
func (svc *SystemService) AdminStats(ctx context.Context) (map[string]int, error) {
	collections := []string{
		repositories.UsersCollection,
		repositories.AIInfoCollection,
		repositories.QuizCollection,
		repositories.ActivityLogsCollection,
	}

	counts := make(map[string]int, len(collections))
	for _, collection := range collections {
		docs, err := svc.store.StreamAll(ctx, collection)
		if err != nil {
			logger.Log.Errorw("failed to count collection", "collection", collection, "error", err)
			return nil, err
		}
		counts[collection] = len(docs)
	}
	return counts, nil
}
