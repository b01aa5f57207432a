package unitofwork

import (
	"context"

	"notelens-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	AssistantLogRepository() contract.AssistantLogRepository
}
