package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"notelens-be/internal/entity"
	"notelens-be/internal/model"
)

type AssistantLogMapper struct{}

func NewAssistantLogMapper() *AssistantLogMapper {
	return &AssistantLogMapper{}
}

func (m *AssistantLogMapper) ToModel(l *entity.AssistantLog) *model.AssistantLog {
	if l == nil {
		return nil
	}

	var details datatypes.JSON
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = datatypes.JSON(raw)
		}
	}

	return &model.AssistantLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Action:     l.Action,
		Status:     l.Status,
		DurationMs: l.DurationMs,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *AssistantLogMapper) ToEntity(l *model.AssistantLog) *entity.AssistantLog {
	if l == nil {
		return nil
	}

	var details map[string]interface{}
	if len(l.Details) > 0 {
		_ = json.Unmarshal(l.Details, &details)
	}

	return &entity.AssistantLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Action:     l.Action,
		Status:     l.Status,
		DurationMs: l.DurationMs,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}
