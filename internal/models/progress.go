package models

import (
	"time"

	"github.com/aimasteryhub/backend/internal/store"
)

// ProgressStatsSentinel marks bookkeeping rows that are excluded from user
// statistics.
const ProgressStatsSentinel = "__stats__"

// UserProgress is one day's learning progress for an anonymous session.
// LearnedInfo is a JSON-encoded string list, matching the stored format.
type UserProgress struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Date        string    `json:"date"`
	LearnedInfo string    `json:"learned_info,omitempty"`
	QuizScore   *int      `json:"quiz_score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fields converts the record to its stored document form.
func (p UserProgress) Fields() map[string]any {
	fields := map[string]any{
		"session_id":   p.SessionID,
		"date":         p.Date,
		"learned_info": p.LearnedInfo,
		"created_at":   p.CreatedAt.Format(time.RFC3339),
	}
	if p.QuizScore != nil {
		fields["quiz_score"] = *p.QuizScore
	}
	return fields
}

// UserProgressFromDocument builds a UserProgress from a stored document.
func UserProgressFromDocument(doc store.Document) UserProgress {
	p := UserProgress{
		ID:          doc.ID,
		SessionID:   fieldString(doc.Fields, "session_id"),
		Date:        fieldString(doc.Fields, "date"),
		LearnedInfo: fieldString(doc.Fields, "learned_info"),
		CreatedAt:   fieldTime(doc.Fields, "created_at"),
	}
	if _, ok := doc.Fields["quiz_score"]; ok {
		score := fieldInt(doc.Fields, "quiz_score")
		p.QuizScore = &score
	}
	return p
}
