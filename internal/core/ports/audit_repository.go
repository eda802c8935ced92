package ports

import (
	"context"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// AuditRepository persists the note mutation trail. Writes are best-effort:
// callers treat failures as non-fatal.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
