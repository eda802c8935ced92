package memory

import (
	"context"
	"sync"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// NoteRepository is a mutex-guarded in-memory note store. Identifiers come
// from a counter that only ever increases, so an id is never reassigned
// even after the note holding it is deleted.
type NoteRepository struct {
	mu     sync.Mutex
	notes  map[int64]*domain.Note
	nextID int64
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[int64]*domain.Note), nextID: 1}
}

func (r *NoteRepository) Insert(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *note
	stored.ID = r.nextID
	r.nextID++
	r.notes[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *NoteRepository) FindByID(_ context.Context, id int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	out := *note
	return &out, nil
}

func (r *NoteRepository) Update(_ context.Context, id int64, title, content string) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	note.Title = title
	note.Content = content

	out := *note
	return &out, nil
}

func (r *NoteRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return false, nil
	}
	delete(r.notes, id)
	return true, nil
}

// Len reports the number of stored notes. Intended for tests.
func (r *NoteRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}
