package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/safenotes/notes-system/internal/core/domain"
	"github.com/safenotes/notes-system/internal/core/ports"
)

// NoteCache abstracts the read-through cache (Redis). Implementations are
// fail-safe: a miss and an unavailable cache look the same.
type NoteCache interface {
	Get(ctx context.Context, id int64) (*domain.Note, bool)
	Set(ctx context.Context, note *domain.Note)
	Invalidate(ctx context.Context, id int64)
}

// AuditSink receives note mutation events for asynchronous recording.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// NoteService is the access-control decision surface over the note store.
// Both cache and audit are optional collaborators; a nil value disables them.
type NoteService struct {
	users ports.UserRepository
	notes ports.NoteRepository
	cache NoteCache
	audit AuditSink
	log   zerolog.Logger
}

func NewNoteService(users ports.UserRepository, notes ports.NoteRepository, cache NoteCache, audit AuditSink, log zerolog.Logger) *NoteService {
	return &NoteService{users: users, notes: notes, cache: cache, audit: audit, log: log}
}

// resolveCaller maps the verified token subject back onto the directory.
// A token whose subject no longer resolves yields ErrUnauthorized.
func (s *NoteService) resolveCaller(ctx context.Context, caller ports.Caller) (*domain.User, error) {
	if caller.Username == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.FindByUsername(ctx, caller.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// Create stores a new note owned by the authenticated caller. Only editors
// and admins may create; ownership is always bound to the caller's own id.
func (s *NoteService) Create(ctx context.Context, caller ports.Caller, title, content string) (*domain.Note, error) {
	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case domain.RoleAdmin, domain.RoleEditor:
		// allowed
	case domain.RoleUser:
		return nil, domain.ErrAccessDenied
	default:
		return nil, domain.ErrAccessDenied
	}

	note, err := s.notes.Insert(ctx, &domain.Note{
		OwnerID:   user.ID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("username", user.Username).Msg("note insert failed")
		return nil, err
	}

	s.recordAudit(user, domain.AuditNoteCreated, note.ID)
	s.log.Info().Int64("note_id", note.ID).Int64("owner_id", note.OwnerID).Msg("note created")
	return note, nil
}

// Get returns the note when the caller may read it: admins read any note,
// everyone else only their own. Not-found and not-owned stay distinct
// errors here; the transport may mask them.
func (s *NoteService) Get(ctx context.Context, caller ports.Caller, id int64) (*domain.Note, error) {
	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, err
	}

	note, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case domain.RoleAdmin:
		return note, nil
	case domain.RoleEditor, domain.RoleUser:
		if note.OwnerID != user.ID {
			return nil, domain.ErrAccessDenied
		}
		return note, nil
	default:
		return nil, domain.ErrAccessDenied
	}
}

// Update replaces title and content. Admins may update any note, editors
// only their own, plain users none. The stored note is untouched on denial.
func (s *NoteService) Update(ctx context.Context, caller ports.Caller, id int64, title, content string) (*domain.Note, error) {
	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return nil, err
	}

	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case domain.RoleAdmin:
		// any note
	case domain.RoleEditor:
		if note.OwnerID != user.ID {
			return nil, domain.ErrAccessDenied
		}
	case domain.RoleUser:
		return nil, domain.ErrAccessDenied
	default:
		return nil, domain.ErrAccessDenied
	}

	updated, err := s.notes.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.recordAudit(user, domain.AuditNoteUpdated, id)
	s.log.Info().Int64("note_id", id).Str("username", user.Username).Msg("note updated")
	return updated, nil
}

// Delete removes the note. Admin only.
func (s *NoteService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	user, err := s.resolveCaller(ctx, caller)
	if err != nil {
		return err
	}

	if user.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}

	removed, err := s.notes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNoteNotFound
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.recordAudit(user, domain.AuditNoteDeleted, id)
	s.log.Info().Int64("note_id", id).Str("username", user.Username).Msg("note deleted")
	return nil
}

// lookup fetches a note through the cache when one is configured.
func (s *NoteService) lookup(ctx context.Context, id int64) (*domain.Note, error) {
	if s.cache != nil {
		if note, ok := s.cache.Get(ctx, id); ok {
			return note, nil
		}
	}

	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, note)
	}
	return note, nil
}

func (s *NoteService) recordAudit(actor *domain.User, action domain.AuditAction, noteID int64) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Actor:     actor.Username,
		ActorID:   actor.ID,
		Action:    action,
		NoteID:    noteID,
		Timestamp: time.Now().UTC(),
	})
}
