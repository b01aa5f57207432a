package entity

import (
	"time"

	"github.com/google/uuid"
)

type AssistantLog struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Action     string
	Status     string
	DurationMs int64
	Details    map[string]interface{}
	CreatedAt  time.Time
}
