package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// ErrAlreadyExists is returned when a keyed record is created twice.
var ErrAlreadyExists = errors.New("already exists")

// AIInfoStore defines persistence for daily AI info records.
type AIInfoStore interface {
	GetByDate(ctx context.Context, date string) (*models.AIInfo, error)
	Create(ctx context.Context, info models.AIInfo) error
	Delete(ctx context.Context, date string) error
	Dates(ctx context.Context) ([]string, error)
}

// AIInfoService manages the daily AI info entries.
type AIInfoService struct {
	repo     AIInfoStore
	activity ActivityRecorder
}

func NewAIInfoService(repo AIInfoStore, activity ActivityRecorder) *AIInfoService {
	return &AIInfoService{repo: repo, activity: activity}
}

// ItemsByDate returns the expanded info slots for a date. An absent date
// yields an empty list, not an error.
func (svc *AIInfoService) ItemsByDate(ctx context.Context, date string) ([]models.AIInfoItem, error) {
	info, err := svc.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return []models.AIInfoItem{}, nil
	}
	items := info.Items()
	if items == nil {
		items = []models.AIInfoItem{}
	}
	return items, nil
}

// Create stores a day's record. Returns ErrAlreadyExists when the date is
// already populated.
func (svc *AIInfoService) Create(ctx context.Context, info models.AIInfo) error {
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}

	err := svc.repo.Create(ctx, info)
	if errors.Is(err, store.ErrConflict) {
		return ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:   "ai_info_create",
		Details:  fmt.Sprintf("ai info added for %s", info.Date),
		LogType:  models.LogTypeContent,
		LogLevel: models.LogLevelInfo,
	})
	return nil
}

// Delete removes a day's record, or ErrNotFound.
func (svc *AIInfoService) Delete(ctx context.Context, date string) error {
	err := svc.repo.Delete(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:   "ai_info_delete",
		Details:  fmt.Sprintf("ai info removed for %s", date),
		LogType:  models.LogTypeContent,
		LogLevel: models.LogLevelWarning,
	})
	return nil
}

// Dates returns every populated date, newest first.
func (svc *AIInfoService) Dates(ctx context.Context) ([]string, error) {
	return svc.repo.Dates(ctx)
}

// QuizStore defines persistence for quiz questions.
type QuizStore interface {
	Topics(ctx context.Context) ([]string, error)
	GetByTopic(ctx context.Context, topic string) ([]models.Quiz, error)
	Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	Update(ctx context.Context, id string, quiz models.Quiz) (models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

// QuizService manages quiz questions.
type QuizService struct {
	repo     QuizStore
	activity ActivityRecorder
}

func NewQuizService(repo QuizStore, activity ActivityRecorder) *QuizService {
	return &QuizService{repo: repo, activity: activity}
}

func (svc *QuizService) Topics(ctx context.Context) ([]string, error) {
	return svc.repo.Topics(ctx)
}

func (svc *QuizService) ByTopic(ctx context.Context, topic string) ([]models.Quiz, error) {
	return svc.repo.GetByTopic(ctx, topic)
}

func (svc *QuizService) Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	created, err := svc.repo.Create(ctx, quiz)
	if err != nil {
		return models.Quiz{}, err
	}

	svc.activity.Record(ctx, models.ActivityLog{
		Action:   "quiz_create",
		Details:  fmt.Sprintf("quiz added under topic %s", created.Topic),
		LogType:  models.LogTypeContent,
		LogLevel: models.LogLevelInfo,
	})
	return created, nil
}

func (svc *QuizService) Update(ctx context.Context, id string, quiz models.Quiz) (models.Quiz, error) {
	updated, err := svc.repo.Update(ctx, id, quiz)
	if errors.Is(err, store.ErrNotFound) {
		return models.Quiz{}, ErrNotFound
	}
	if err != nil {
		return models.Quiz{}, err
	}
	return updated, nil
}

func (svc *QuizService) Delete(ctx context.Context, id string) error {
	err := svc.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// PromptStore defines persistence for prompt snippets.
type PromptStore interface {
	List(ctx context.Context) ([]models.Prompt, error)
	ListByCategory(ctx context.Context, category string) ([]models.Prompt, error)
	Create(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	Update(ctx context.Context, id string, prompt models.Prompt) (models.Prompt, error)
	Delete(ctx context.Context, id string) error
}

// PromptService manages prompt snippets.
type PromptService struct {
	repo PromptStore
}

func NewPromptService(repo PromptStore) *PromptService {
	return &PromptService{repo: repo}
}

func (svc *PromptService) List(ctx context.Context) ([]models.Prompt, error) {
	return svc.repo.List(ctx)
}

func (svc *PromptService) ByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	return svc.repo.ListByCategory(ctx, category)
}

func (svc *PromptService) Create(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	if prompt.CreatedAt.IsZero() {
		prompt.CreatedAt = time.Now().UTC()
	}
	return svc.repo.Create(ctx, prompt)
}

func (svc *PromptService) Update(ctx context.Context, id string, prompt models.Prompt) (models.Prompt, error) {
	updated, err := svc.repo.Update(ctx, id, prompt)
	if errors.Is(err, store.ErrNotFound) {
		return models.Prompt{}, ErrNotFound
	}
	if err != nil {
		return models.Prompt{}, err
	}
	return updated, nil
}

func (svc *PromptService) Delete(ctx context.Context, id string) error {
	err := svc.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// TermStore defines persistence for glossary terms.
type TermStore interface {
	List(ctx context.Context) ([]models.Term, error)
	Create(ctx context.Context, term models.Term) (models.Term, error)
}

// TermService manages glossary terms.
type TermService struct {
	repo TermStore
}

func NewTermService(repo TermStore) *TermService {
	return &TermService{repo: repo}
}

func (svc *TermService) List(ctx context.Context) ([]models.Term, error) {
	return svc.repo.List(ctx)
}

func (svc *TermService) Create(ctx context.Context, term models.Term) (models.Term, error) {
	if term.CreatedAt.IsZero() {
		term.CreatedAt = time.Now().UTC()
	}
	return svc.repo.Create(ctx, term)
}

// BaseContentStore defines persistence for static articles.
type BaseContentStore interface {
	List(ctx context.Context) ([]models.BaseContent, error)
	Create(ctx context.Context, content models.BaseContent) (models.BaseContent, error)
}

// BaseContentService manages static learning articles.
type BaseContentService struct {
	repo BaseContentStore
}

func NewBaseContentService(repo BaseContentStore) *BaseContentService {
	return &BaseContentService{repo: repo}
}

func (svc *BaseContentService) List(ctx context.Context) ([]models.BaseContent, error) {
	return svc.repo.List(ctx)
}

func (svc *BaseContentService) Create(ctx context.Context, content models.BaseContent) (models.BaseContent, error) {
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	return svc.repo.Create(ctx, content)
}

// ProgressStore defines persistence for session progress.
type ProgressStore interface {
	GetBySession(ctx context.Context, sessionID string) ([]models.UserProgress, error)
	Create(ctx context.Context, progress models.UserProgress) (models.UserProgress, error)
}

// ProgressStats summarizes one session's learning history.
type ProgressStats struct {
	TotalDays      int     `json:"total_days"`
	TotalQuizScore int     `json:"total_quiz_score"`
	AverageScore   float64 `json:"average_score"`
}

// ProgressService manages per-session learning progress.
type ProgressService struct {
	repo ProgressStore
}

func NewProgressService(repo ProgressStore) *ProgressService {
	return &ProgressService{repo: repo}
}

func (svc *ProgressService) BySession(ctx context.Context, sessionID string) ([]models.UserProgress, error) {
	return svc.repo.GetBySession(ctx, sessionID)
}

func (svc *ProgressService) Create(ctx context.Context, progress models.UserProgress) (models.UserProgress, error) {
	if progress.CreatedAt.IsZero() {
		progress.CreatedAt = time.Now().UTC()
	}
	return svc.repo.Create(ctx, progress)
}

// Stats tallies a session's recorded days and quiz scores. Bookkeeping
// rows marked with the stats sentinel date are excluded.
func (svc *ProgressService) Stats(ctx context.Context, sessionID string) (ProgressStats, error) {
	records, err := svc.repo.GetBySession(ctx, sessionID)
	if err != nil {
		return ProgressStats{}, err
	}

	var stats ProgressStats
	scored := 0
	for _, record := range records {
		if record.Date == models.ProgressStatsSentinel {
			continue
		}
		stats.TotalDays++
		if record.QuizScore != nil {
			stats.TotalQuizScore += *record.QuizScore
			scored++
		}
	}
	if scored > 0 {
		avg := float64(stats.TotalQuizScore) / float64(scored)
		stats.AverageScore = math.Round(avg*100) / 100
	}
	return stats, nil
}
