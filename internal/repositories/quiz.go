package repositories

import (
	"context"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// QuizCollection is the document collection holding quiz questions.
const QuizCollection = "quiz"

// QuizRepository persists quiz questions.
type QuizRepository struct {
	store store.Store
}

func NewQuizRepository(s store.Store) *QuizRepository {
	return &QuizRepository{store: s}
}

// Topics returns the distinct topics across all quizzes.
func (r *QuizRepository) Topics(ctx context.Context) ([]string, error) {
	docs, err := r.store.StreamAll(ctx, QuizCollection)
	if err != nil {
		logger.Log.Errorw("failed to stream quiz topics", "error", err)
		return nil, err
	}

	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for _, doc := range docs {
		topic := models.QuizFromDocument(doc).Topic
		if topic == "" {
			continue
		}
		if _, ok := seen[topic]; ok {
			continue
		}
		seen[topic] = struct{}{}
		topics = append(topics, topic)
	}
	return topics, nil
}

// GetByTopic returns every quiz under a topic.
func (r *QuizRepository) GetByTopic(ctx context.Context, topic string) ([]models.Quiz, error) {
	docs, err := r.store.Query(ctx, QuizCollection, &store.Filter{Field: "topic", Value: topic}, "")
	if err != nil {
		logger.Log.Errorw("failed to query quizzes", "topic", topic, "error", err)
		return nil, err
	}
	quizzes := make([]models.Quiz, 0, len(docs))
	for _, doc := range docs {
		quizzes = append(quizzes, models.QuizFromDocument(doc))
	}
	return quizzes, nil
}

// Create stores a quiz and returns it with the assigned ID.
func (r *QuizRepository) Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	id, err := r.store.Put(ctx, QuizCollection, quiz.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create quiz", "topic", quiz.Topic, "error", err)
		return models.Quiz{}, err
	}
	quiz.ID = id
	return quiz, nil
}

// Update replaces a quiz's fields, or store.ErrNotFound.
func (r *QuizRepository) Update(ctx context.Context, id string, quiz models.Quiz) (models.Quiz, error) {
	if err := r.store.Update(ctx, QuizCollection, id, quiz.Fields()); err != nil {
		logger.Log.Errorw("failed to update quiz", "id", id, "error", err)
		return models.Quiz{}, err
	}
	quiz.ID = id
	return quiz, nil
}

// Delete removes a quiz, or store.ErrNotFound.
func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, QuizCollection, id); err != nil {
		logger.Log.Errorw("failed to delete quiz", "id", id, "error", err)
		return err
	}
	return nil
}
