package ports

import (
	"context"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// Caller is the already-verified identity extracted from an access token by
// the auth middleware. The service resolves Username against the user
// directory before taking any decision.
type Caller struct {
	Username string
	Role     domain.Role
}

// NoteService enforces the role/ownership access table over the note store:
//
//	create: admin, editor (owner = caller); plain user denied
//	read:   admin any note; editor/user own notes only
//	update: admin any note; editor own notes only; plain user denied
//	delete: admin only
type NoteService interface {
	Create(ctx context.Context, caller Caller, title, content string) (*domain.Note, error)
	Get(ctx context.Context, caller Caller, id int64) (*domain.Note, error)
	Update(ctx context.Context, caller Caller, id int64, title, content string) (*domain.Note, error)
	Delete(ctx context.Context, caller Caller, id int64) error
}
