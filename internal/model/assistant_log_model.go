package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssistantLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action     string         `gorm:"type:varchar(50);not null;index"`
	Status     string         `gorm:"type:varchar(20);not null"`
	DurationMs int64          `gorm:"not null"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"default:now();not null;index"`
}

func (AssistantLog) TableName() string {
	return "assistant_logs"
}
