package handler

import "time"

type noteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// noteResponse is the transport view of a note, intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type noteResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
