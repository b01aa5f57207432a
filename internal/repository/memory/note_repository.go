package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"notelens-be/internal/entity"
	"notelens-be/internal/repository/contract"
	"notelens-be/internal/repository/specification"
)

// NoteRepository is an in-process implementation of the note contract.
// It interprets the query specifications the gorm implementation
// receives, so services can run against it unchanged in tests.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]*entity.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes: make(map[uuid.UUID]*entity.Note),
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.notes[note.Id]; exists {
		return fmt.Errorf("duplicate key: note %s already exists", note.Id)
	}
	clone := *note
	r.notes[note.Id] = &clone
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *note
	r.notes[note.Id] = &clone
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserId != userId {
		return false, nil
	}
	delete(r.notes, id)
	return true, nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	matches := r.match(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	clone := *matches[0]
	return &clone, nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	matches := r.match(specs)
	out := make([]*entity.Note, len(matches))
	for i, n := range matches {
		clone := *n
		out[i] = &clone
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.match(specs))), nil
}

func (r *NoteRepository) match(specs []specification.Specification) []*entity.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ordered bool
	var matches []*entity.Note
	for _, note := range r.notes {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if note.Id != s.ID {
					ok = false
				}
			case specification.OwnedByUser:
				if note.UserId != s.UserID {
					ok = false
				}
			case specification.OrderByCreatedAtDesc:
				ordered = true
			}
		}
		if ok {
			matches = append(matches, note)
		}
	}

	if ordered {
		sort.Slice(matches, func(i, j int) bool {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		})
	}
	return matches
}

var _ contract.NoteRepository = (*NoteRepository)(nil)
