package memory

import (
	"context"
	"sync"

	"notelens-be/internal/entity"
	"notelens-be/internal/repository/contract"
)

type AssistantLogRepository struct {
	mu   sync.Mutex
	logs []*entity.AssistantLog
}

func NewAssistantLogRepository() *AssistantLogRepository {
	return &AssistantLogRepository{}
}

func (r *AssistantLogRepository) Create(ctx context.Context, log *entity.AssistantLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *log
	r.logs = append(r.logs, &clone)
	return nil
}

// Logs returns a snapshot of everything recorded so far.
func (r *AssistantLogRepository) Logs() []*entity.AssistantLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.AssistantLog, len(r.logs))
	copy(out, r.logs)
	return out
}

var _ contract.AssistantLogRepository = (*AssistantLogRepository)(nil)
