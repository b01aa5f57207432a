package memory

import (
	"context"

	"notelens-be/internal/repository/contract"
	"notelens-be/internal/repository/unitofwork"
)

// RepositoryFactory wires the in-process repositories behind the same
// factory interface the gorm implementation exposes.
type RepositoryFactory struct {
	Notes *NoteRepository
	Logs  *AssistantLogRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		Notes: NewNoteRepository(),
		Logs:  NewAssistantLogRepository(),
	}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

type memoryUnitOfWork struct {
	factory *RepositoryFactory
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) NoteRepository() contract.NoteRepository {
	return u.factory.Notes
}

func (u *memoryUnitOfWork) AssistantLogRepository() contract.AssistantLogRepository {
	return u.factory.Logs
}

var _ unitofwork.RepositoryFactory = (*RepositoryFactory)(nil)
