package contract

import (
	"context"

	"notelens-be/internal/entity"
)

type AssistantLogRepository interface {
	Create(ctx context.Context, log *entity.AssistantLog) error
}
