package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note ids are supplied by the client so the editor can reference a
// note before the create round-trip completes.
type Note struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Text      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
