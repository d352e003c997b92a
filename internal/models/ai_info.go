package models

import (
	"encoding/json"
	"time"

	"github.com/aimasteryhub/backend/internal/store"
)

// AIInfo is one day's set of AI info entries, keyed by date string
// (YYYY-MM-DD). Each of the three slots carries a title, content, and a
// terms list stored as a JSON-encoded string.
type AIInfo struct {
	Date         string    `json:"date"`
	Info1Title   string    `json:"info1_title,omitempty"`
	Info1Content string    `json:"info1_content,omitempty"`
	Info1Terms   string    `json:"info1_terms,omitempty"`
	Info2Title   string    `json:"info2_title,omitempty"`
	Info2Content string    `json:"info2_content,omitempty"`
	Info2Terms   string    `json:"info2_terms,omitempty"`
	Info3Title   string    `json:"info3_title,omitempty"`
	Info3Content string    `json:"info3_content,omitempty"`
	Info3Terms   string    `json:"info3_terms,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AIInfoItem is one expanded info slot with its terms decoded.
type AIInfoItem struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Terms   []string `json:"terms"`
}

// Fields converts the record to its stored document form.
func (a AIInfo) Fields() map[string]any {
	return map[string]any{
		"date":          a.Date,
		"info1_title":   a.Info1Title,
		"info1_content": a.Info1Content,
		"info1_terms":   a.Info1Terms,
		"info2_title":   a.Info2Title,
		"info2_content": a.Info2Content,
		"info2_terms":   a.Info2Terms,
		"info3_title":   a.Info3Title,
		"info3_content": a.Info3Content,
		"info3_terms":   a.Info3Terms,
		"created_at":    a.CreatedAt.Format(time.RFC3339),
	}
}

// AIInfoFromDocument builds an AIInfo from a stored document.
func AIInfoFromDocument(doc store.Document) AIInfo {
	return AIInfo{
		Date:         fieldString(doc.Fields, "date"),
		Info1Title:   fieldString(doc.Fields, "info1_title"),
		Info1Content: fieldString(doc.Fields, "info1_content"),
		Info1Terms:   fieldString(doc.Fields, "info1_terms"),
		Info2Title:   fieldString(doc.Fields, "info2_title"),
		Info2Content: fieldString(doc.Fields, "info2_content"),
		Info2Terms:   fieldString(doc.Fields, "info2_terms"),
		Info3Title:   fieldString(doc.Fields, "info3_title"),
		Info3Content: fieldString(doc.Fields, "info3_content"),
		Info3Terms:   fieldString(doc.Fields, "info3_terms"),
		CreatedAt:    fieldTime(doc.Fields, "created_at"),
	}
}

// Items expands the non-empty info slots, decoding each terms string.
// Malformed terms JSON decodes to an empty list.
func (a AIInfo) Items() []AIInfoItem {
	var items []AIInfoItem
	slots := []struct{ title, content, terms string }{
		{a.Info1Title, a.Info1Content, a.Info1Terms},
		{a.Info2Title, a.Info2Content, a.Info2Terms},
		{a.Info3Title, a.Info3Content, a.Info3Terms},
	}
	for _, slot := range slots {
		if slot.title == "" || slot.content == "" {
			continue
		}
		items = append(items, AIInfoItem{
			Title:   slot.title,
			Content: slot.content,
			Terms:   DecodeStringList(slot.terms),
		})
	}
	return items
}

// DecodeStringList decodes a JSON-encoded string list, returning an empty
// list for empty or malformed input.
func DecodeStringList(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return []string{}
	}
	return list
}

// EncodeStringList encodes a string list as a JSON string for storage.
func EncodeStringList(list []string) string {
	if len(list) == 0 {
		return ""
	}
	data, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(data)
}
