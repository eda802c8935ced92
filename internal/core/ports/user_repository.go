package ports

import (
	"context"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// UserRepository is the authoritative directory of users. Implementations
// must assign the ID on Create, enforce case-sensitive username uniqueness
// atomically, and never reuse identifiers.
type UserRepository interface {
	// Create stores a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the username is already present.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Count reports the current directory size.
	Count(ctx context.Context) (int64, error)
}
