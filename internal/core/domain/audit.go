package domain

import "time"

// AuditAction identifies a note mutation recorded in the audit trail.
type AuditAction string

const (
	AuditNoteCreated AuditAction = "note.created"
	AuditNoteUpdated AuditAction = "note.updated"
	AuditNoteDeleted AuditAction = "note.deleted"
)

// AuditEvent records a single note mutation performed by an actor.
type AuditEvent struct {
	Actor     string      `bson:"actor"`
	ActorID   int64       `bson:"actor_id"`
	Action    AuditAction `bson:"action"`
	NoteID    int64       `bson:"note_id"`
	Timestamp time.Time   `bson:"timestamp"`
}
