package repositories

import (
	"context"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// Content collections.
const (
	PromptCollection      = "prompt"
	TermCollection        = "term"
	BaseContentCollection = "base_content"
)

// PromptRepository persists prompt snippets.
type PromptRepository struct {
	store store.Store
}

func NewPromptRepository(s store.Store) *PromptRepository {
	return &PromptRepository{store: s}
}

// List returns all prompts, newest first.
func (r *PromptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	docs, err := r.store.Query(ctx, PromptCollection, nil, "created_at")
	if err != nil {
		logger.Log.Errorw("failed to list prompts", "error", err)
		return nil, err
	}
	prompts := make([]models.Prompt, 0, len(docs))
	for _, doc := range docs {
		prompts = append(prompts, models.PromptFromDocument(doc))
	}
	return prompts, nil
}

// ListByCategory returns prompts in one category.
func (r *PromptRepository) ListByCategory(ctx context.Context, category string) ([]models.Prompt, error) {
	docs, err := r.store.Query(ctx, PromptCollection, &store.Filter{Field: "category", Value: category}, "")
	if err != nil {
		logger.Log.Errorw("failed to query prompts", "category", category, "error", err)
		return nil, err
	}
	prompts := make([]models.Prompt, 0, len(docs))
	for _, doc := range docs {
		prompts = append(prompts, models.PromptFromDocument(doc))
	}
	return prompts, nil
}

// Create stores a prompt and returns it with the assigned ID.
func (r *PromptRepository) Create(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	id, err := r.store.Put(ctx, PromptCollection, prompt.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create prompt", "title", prompt.Title, "error", err)
		return models.Prompt{}, err
	}
	prompt.ID = id
	return prompt, nil
}

// Update replaces a prompt's editable fields, or store.ErrNotFound.
func (r *PromptRepository) Update(ctx context.Context, id string, prompt models.Prompt) (models.Prompt, error) {
	fields := map[string]any{
		"title":    prompt.Title,
		"content":  prompt.Content,
		"category": prompt.Category,
	}
	if err := r.store.Update(ctx, PromptCollection, id, fields); err != nil {
		logger.Log.Errorw("failed to update prompt", "id", id, "error", err)
		return models.Prompt{}, err
	}
	prompt.ID = id
	return prompt, nil
}

// Delete removes a prompt, or store.ErrNotFound.
func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, PromptCollection, id); err != nil {
		logger.Log.Errorw("failed to delete prompt", "id", id, "error", err)
		return err
	}
	return nil
}

// TermRepository persists glossary terms.
type TermRepository struct {
	store store.Store
}

func NewTermRepository(s store.Store) *TermRepository {
	return &TermRepository{store: s}
}

// List returns all terms, newest first.
func (r *TermRepository) List(ctx context.Context) ([]models.Term, error) {
	docs, err := r.store.Query(ctx, TermCollection, nil, "created_at")
	if err != nil {
		logger.Log.Errorw("failed to list terms", "error", err)
		return nil, err
	}
	terms := make([]models.Term, 0, len(docs))
	for _, doc := range docs {
		terms = append(terms, models.TermFromDocument(doc))
	}
	return terms, nil
}

// Create stores a term and returns it with the assigned ID.
func (r *TermRepository) Create(ctx context.Context, term models.Term) (models.Term, error) {
	id, err := r.store.Put(ctx, TermCollection, term.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create term", "term", term.Term, "error", err)
		return models.Term{}, err
	}
	term.ID = id
	return term, nil
}

// BaseContentRepository persists static learning articles.
type BaseContentRepository struct {
	store store.Store
}

func NewBaseContentRepository(s store.Store) *BaseContentRepository {
	return &BaseContentRepository{store: s}
}

// List returns all articles, newest first.
func (r *BaseContentRepository) List(ctx context.Context) ([]models.BaseContent, error) {
	docs, err := r.store.Query(ctx, BaseContentCollection, nil, "created_at")
	if err != nil {
		logger.Log.Errorw("failed to list base content", "error", err)
		return nil, err
	}
	contents := make([]models.BaseContent, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, models.BaseContentFromDocument(doc))
	}
	return contents, nil
}

// Create stores an article and returns it with the assigned ID.
func (r *BaseContentRepository) Create(ctx context.Context, content models.BaseContent) (models.BaseContent, error) {
	id, err := r.store.Put(ctx, BaseContentCollection, content.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create base content", "title", content.Title, "error", err)
		return models.BaseContent{}, err
	}
	content.ID = id
	return content, nil
}
