package models

import (
	"time"

	"github.com/aimasteryhub/backend/internal/store"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is an assignable user role.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a user account. The username is unique and case-sensitive.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	HashedPassword string    `json:"-"` // never exposed to clients
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Fields converts the user to its stored document form.
func (u User) Fields() map[string]any {
	return map[string]any{
		"username":        u.Username,
		"email":           u.Email,
		"hashed_password": u.HashedPassword,
		"role":            u.Role,
		"created_at":      u.CreatedAt.Format(time.RFC3339),
	}
}

// UserFromDocument builds a User from a stored document.
func UserFromDocument(doc store.Document) User {
	role := fieldString(doc.Fields, "role")
	if role == "" {
		role = RoleUser
	}
	return User{
		ID:             doc.ID,
		Username:       fieldString(doc.Fields, "username"),
		Email:          fieldString(doc.Fields, "email"),
		HashedPassword: fieldString(doc.Fields, "hashed_password"),
		Role:           role,
		CreatedAt:      fieldTime(doc.Fields, "created_at"),
	}
}
