package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Id uuid.UUID `json:"id" validate:"required"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateNoteRequest struct {
	Id   uuid.UUID
	Text string `json:"text"`
}

type UpdateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
