package store

import (
	"encoding/json"
	"time"
)

// SectionRow is one stored section document. At most one row exists per
// section key; Content may be NULL.
type SectionRow struct {
	ID         string
	SectionKey string
	Content    json.RawMessage
	UpdatedAt  time.Time
}

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may use the admin content screens.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
