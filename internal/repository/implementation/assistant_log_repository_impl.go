package implementation

import (
	"context"

	"gorm.io/gorm"

	"notelens-be/internal/entity"
	"notelens-be/internal/mapper"
	"notelens-be/internal/repository/contract"
)

type AssistantLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssistantLogMapper
}

func NewAssistantLogRepository(db *gorm.DB) contract.AssistantLogRepository {
	return &AssistantLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssistantLogMapper(),
	}
}

func (r *AssistantLogRepositoryImpl) Create(ctx context.Context, log *entity.AssistantLog) error {
	m := r.mapper.ToModel(log)
	return r.db.WithContext(ctx).Create(m).Error
}
