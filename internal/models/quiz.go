package models

import "github.com/aimasteryhub/backend/internal/store"

// Quiz is one multiple-choice question under a topic. Correct is the
// 1-based index of the right option.
type Quiz struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Question    string `json:"question"`
	Option1     string `json:"option1"`
	Option2     string `json:"option2"`
	Option3     string `json:"option3"`
	Option4     string `json:"option4"`
	Correct     int    `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// Fields converts the quiz to its stored document form.
func (q Quiz) Fields() map[string]any {
	return map[string]any{
		"topic":       q.Topic,
		"question":    q.Question,
		"option1":     q.Option1,
		"option2":     q.Option2,
		"option3":     q.Option3,
		"option4":     q.Option4,
		"correct":     q.Correct,
		"explanation": q.Explanation,
	}
}

// QuizFromDocument builds a Quiz from a stored document.
func QuizFromDocument(doc store.Document) Quiz {
	return Quiz{
		ID:          doc.ID,
		Topic:       fieldString(doc.Fields, "topic"),
		Question:    fieldString(doc.Fields, "question"),
		Option1:     fieldString(doc.Fields, "option1"),
		Option2:     fieldString(doc.Fields, "option2"),
		Option3:     fieldString(doc.Fields, "option3"),
		Option4:     fieldString(doc.Fields, "option4"),
		Correct:     fieldInt(doc.Fields, "correct"),
		Explanation: fieldString(doc.Fields, "explanation"),
	}
}
