package models

import (
	"time"

	"github.com/aimasteryhub/backend/internal/store"
)

// Activity log types.
const (
	LogTypeUser    = "user"
	LogTypeContent = "content"
	LogTypeSystem  = "system"
)

// Activity log levels.
const (
	LogLevelInfo    = "info"
	LogLevelSuccess = "success"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// ActivityLog is one immutable audit record of a user- or system-initiated
// action. Entries are append-only and only removed by an administrative
// bulk clear.
type ActivityLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	LogType   string    `json:"log_type"`
	LogLevel  string    `json:"log_level"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Fields converts the entry to its stored document form.
func (l ActivityLog) Fields() map[string]any {
	return map[string]any{
		"action":     l.Action,
		"details":    l.Details,
		"log_type":   l.LogType,
		"log_level":  l.LogLevel,
		"user_id":    l.UserID,
		"username":   l.Username,
		"ip_address": l.IPAddress,
		"user_agent": l.UserAgent,
		"session_id": l.SessionID,
		"created_at": l.CreatedAt.Format(time.RFC3339),
	}
}

// ActivityLogFromDocument builds an ActivityLog from a stored document.
func ActivityLogFromDocument(doc store.Document) ActivityLog {
	logType := fieldString(doc.Fields, "log_type")
	if logType == "" {
		logType = LogTypeUser
	}
	logLevel := fieldString(doc.Fields, "log_level")
	if logLevel == "" {
		logLevel = LogLevelInfo
	}
	return ActivityLog{
		ID:        doc.ID,
		Action:    fieldString(doc.Fields, "action"),
		Details:   fieldString(doc.Fields, "details"),
		LogType:   logType,
		LogLevel:  logLevel,
		UserID:    fieldString(doc.Fields, "user_id"),
		Username:  fieldString(doc.Fields, "username"),
		IPAddress: fieldString(doc.Fields, "ip_address"),
		UserAgent: fieldString(doc.Fields, "user_agent"),
		SessionID: fieldString(doc.Fields, "session_id"),
		CreatedAt: fieldTime(doc.Fields, "created_at"),
	}
}
