package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"notelens-be/internal/dto"
	"notelens-be/internal/entity"
	"notelens-be/internal/pkg/apperror"
	"notelens-be/internal/repository/specification"
	"notelens-be/internal/repository/unitofwork"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

// Create inserts an empty note under the caller-supplied id. The
// editor fills the text in with later updates.
func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	if userId == uuid.Nil {
		return nil, apperror.Unauthenticated("You must be signed in to create notes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:        req.Id,
		UserId:    userId,
		Text:      "",
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.Persistence("Failed to create note", err)
	}

	return &dto.CreateNoteResponse{
		Id: note.Id,
	}, nil
}

// Update replaces the note text wholesale. Ownership is enforced here
// exactly as on delete, so one user can never edit another's note.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	if userId == uuid.Nil {
		return nil, apperror.Unauthenticated("You must be signed in to update notes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Persistence("Failed to load note", err)
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}

	now := time.Now()
	note.Text = req.Text
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.Persistence("Failed to update note", err)
	}

	return &dto.UpdateNoteResponse{
		Id: note.Id,
	}, nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if userId == uuid.Nil {
		return apperror.Unauthenticated("You must be signed in to delete notes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.NoteRepository().Delete(ctx, id, userId)
	if err != nil {
		return apperror.Persistence("Failed to delete note", err)
	}
	if !deleted {
		return apperror.NotFound("Note not found")
	}
	return nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	if userId == uuid.Nil {
		return nil, apperror.Unauthenticated("You must be signed in to list notes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, apperror.Persistence("Failed to list notes", err)
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = &dto.NoteResponse{
			Id:        note.Id,
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
	}
	return res, nil
}
