package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of privilege tiers governing note operations.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole maps a user-supplied role name onto the closed enumeration.
// Matching is case-insensitive so clients may send "Admin" or "admin".
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleEditor):
		return RoleEditor, nil
	case string(RoleUser):
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User models an authenticated actor. The password hash is opaque and never
// serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	// ErrUnauthorized signals that the caller's identity could not be
	// resolved against the user directory.
	ErrUnauthorized = errors.New("caller identity unresolved")
)
