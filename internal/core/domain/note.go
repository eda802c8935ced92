package domain

import (
	"errors"
	"time"
)

// Note is a user-owned record. OwnerID references the user that created it;
// CreatedAt is set once at creation and never mutated.
type Note struct {
	ID        int64     `json:"id" bson:"_id"`
	OwnerID   int64     `json:"owner_id" bson:"owner_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

var (
	ErrNoteNotFound = errors.New("note not found")
	// ErrAccessDenied signals an authenticated caller with insufficient
	// privilege or ownership for the requested note.
	ErrAccessDenied = errors.New("access denied")
)
