package domain

import "time"

// Role represents a user's role. It is fixed at signup.
type Role string

const (
	RoleAuthor Role = "AUTHOR"
	RoleEditor Role = "EDITOR"
)

// Roles contains all valid user roles.
var Roles = []Role{RoleAuthor, RoleEditor}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if string(r) == role {
			return true
		}
	}
	return false
}

// ParseRole converts a raw string into a Role.
// The second return value is false for unknown values.
func ParseRole(raw string) (Role, bool) {
	if !IsValidRole(raw) {
		return "", false
	}
	return Role(raw), true
}

// User represents a user entity in the system. An authenticated User is the
// acting principal for every post operation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session represents a server-side login session.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
