package repositories

import (
	"context"
	"errors"
	"sort"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// AIInfoCollection holds one document per date, keyed by the date string.
const AIInfoCollection = "ai_info"

// AIInfoRepository persists daily AI info records.
type AIInfoRepository struct {
	store store.Store
}

func NewAIInfoRepository(s store.Store) *AIInfoRepository {
	return &AIInfoRepository{store: s}
}

// GetByDate returns the record for a date, or nil when absent.
func (r *AIInfoRepository) GetByDate(ctx context.Context, date string) (*models.AIInfo, error) {
	doc, err := r.store.Get(ctx, AIInfoCollection, date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get ai info", "date", date, "error", err)
		return nil, err
	}
	info := models.AIInfoFromDocument(doc)
	return &info, nil
}

// Create stores a record under its date key. Returns store.ErrConflict when
// the date already has a record.
func (r *AIInfoRepository) Create(ctx context.Context, info models.AIInfo) error {
	if err := r.store.Set(ctx, AIInfoCollection, info.Date, info.Fields(), true); err != nil {
		logger.Log.Errorw("failed to create ai info", "date", info.Date, "error", err)
		return err
	}
	logger.Log.Infow("ai info created", "date", info.Date)
	return nil
}

// Delete removes the record for a date, or store.ErrNotFound.
func (r *AIInfoRepository) Delete(ctx context.Context, date string) error {
	if err := r.store.Delete(ctx, AIInfoCollection, date); err != nil {
		logger.Log.Errorw("failed to delete ai info", "date", date, "error", err)
		return err
	}
	logger.Log.Infow("ai info deleted", "date", date)
	return nil
}

// Dates returns every stored date, newest first.
func (r *AIInfoRepository) Dates(ctx context.Context) ([]string, error) {
	docs, err := r.store.StreamAll(ctx, AIInfoCollection)
	if err != nil {
		logger.Log.Errorw("failed to stream ai info dates", "error", err)
		return nil, err
	}
	dates := make([]string, 0, len(docs))
	for _, doc := range docs {
		dates = append(dates, doc.ID)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}
