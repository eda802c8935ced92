package ports

import (
	"context"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// NoteRepository persists notes without any access filtering; visibility is
// the note service's concern. Implementations must assign identifiers
// atomically and never reuse one, even after deletion.
type NoteRepository interface {
	// Insert stores a new note and returns it with its assigned ID.
	Insert(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// FindByID returns domain.ErrNoteNotFound when no note matches.
	FindByID(ctx context.Context, id int64) (*domain.Note, error)
	// Update replaces title and content in place, leaving CreatedAt and
	// OwnerID untouched. Returns domain.ErrNoteNotFound when absent.
	Update(ctx context.Context, id int64, title, content string) (*domain.Note, error)
	// Delete removes the note and reports whether one was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
