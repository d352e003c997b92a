package models

import (
	"time"

	"github.com/aimasteryhub/backend/internal/store"
)

// Prompt is a reusable prompt snippet under a category.
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Prompt) Fields() map[string]any {
	return map[string]any{
		"title":      p.Title,
		"content":    p.Content,
		"category":   p.Category,
		"created_at": p.CreatedAt.Format(time.RFC3339),
	}
}

func PromptFromDocument(doc store.Document) Prompt {
	return Prompt{
		ID:        doc.ID,
		Title:     fieldString(doc.Fields, "title"),
		Content:   fieldString(doc.Fields, "content"),
		Category:  fieldString(doc.Fields, "category"),
		CreatedAt: fieldTime(doc.Fields, "created_at"),
	}
}

// Term is one glossary entry.
type Term struct {
	ID          string    `json:"id"`
	Term        string    `json:"term"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t Term) Fields() map[string]any {
	return map[string]any{
		"term":        t.Term,
		"description": t.Description,
		"category":    t.Category,
		"created_at":  t.CreatedAt.Format(time.RFC3339),
	}
}

func TermFromDocument(doc store.Document) Term {
	return Term{
		ID:          doc.ID,
		Term:        fieldString(doc.Fields, "term"),
		Description: fieldString(doc.Fields, "description"),
		Category:    fieldString(doc.Fields, "category"),
		CreatedAt:   fieldTime(doc.Fields, "created_at"),
	}
}

// BaseContent is a static learning article.
type BaseContent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (b BaseContent) Fields() map[string]any {
	return map[string]any{
		"title":      b.Title,
		"content":    b.Content,
		"category":   b.Category,
		"created_at": b.CreatedAt.Format(time.RFC3339),
	}
}

func BaseContentFromDocument(doc store.Document) BaseContent {
	return BaseContent{
		ID:        doc.ID,
		Title:     fieldString(doc.Fields, "title"),
		Content:   fieldString(doc.Fields, "content"),
		Category:  fieldString(doc.Fields, "category"),
		CreatedAt: fieldTime(doc.Fields, "created_at"),
	}
}
