// Package memory provides the default in-process implementations of the
// repositories. Each instance owns its own state, so tests and embedded
// deployments get isolated stores instead of process-wide globals.
package memory

import (
	"context"
	"sync"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// UserRepository is a mutex-guarded in-memory user directory. The
// uniqueness check and insert run under one lock so concurrent registers
// can never produce duplicate usernames or ids.
type UserRepository struct {
	mu      sync.Mutex
	byName  map[string]*domain.User
	ordered []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byName: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *user
	// Users are never deleted, so size+1 is collision-free.
	stored.ID = int64(len(r.ordered)) + 1
	r.byName[stored.Username] = &stored
	r.ordered = append(r.ordered, &stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.ordered)), nil
}
