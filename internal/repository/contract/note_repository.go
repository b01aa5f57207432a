package contract

import (
	"context"

	"github.com/google/uuid"

	"notelens-be/internal/entity"
	"notelens-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// Delete removes the note only when both id and owner match and
	// reports whether a row was actually deleted.
	Delete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
