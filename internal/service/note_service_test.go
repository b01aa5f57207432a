package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notelens-be/internal/dto"
	"notelens-be/internal/pkg/apperror"
	"notelens-be/internal/repository/memory"
)

func TestCreateThenListIncludesEmptyNote(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	owner := uuid.New()
	noteId := uuid.New()

	res, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Id: noteId})
	require.NoError(t, err)
	assert.Equal(t, noteId, res.Id)

	notes, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, noteId, notes[0].Id)
	assert.Equal(t, "", notes[0].Text)
}

func TestCreateDuplicateIdFails(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	owner := uuid.New()
	noteId := uuid.New()

	_, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Id: noteId})
	require.NoError(t, err)

	_, err = svc.Create(ctx, owner, &dto.CreateNoteRequest{Id: noteId})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}

func TestUpdateReplacesTextForOwner(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	owner := uuid.New()
	noteId := uuid.New()
	_, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Id: noteId})
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, &dto.UpdateNoteRequest{Id: noteId, Text: "first draft"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "first draft", notes[0].Text)
	assert.NotNil(t, notes[0].UpdatedAt)
}

func TestUpdateByNonOwnerIsNotFound(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	owner := uuid.New()
	intruder := uuid.New()
	noteId := uuid.New()
	_, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Id: noteId})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, &dto.UpdateNoteRequest{Id: noteId, Text: "hijacked"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	notes, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "", notes[0].Text)
}

func TestDeleteOnlyRemovesOwnNote(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()
	noteId := uuid.New()

	_, err := svc.Create(ctx, ownerB, &dto.CreateNoteRequest{Id: noteId})
	require.NoError(t, err)

	// Owner A attempts to delete B's note using the same id.
	err = svc.Delete(ctx, ownerA, noteId)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	notes, err := svc.List(ctx, ownerB)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, svc.Delete(ctx, ownerB, noteId))
	notes, err = svc.List(ctx, ownerB)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteActionsRequireAuthentication(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	svc := NewNoteService(repos)
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.Nil, &dto.CreateNoteRequest{Id: uuid.New()})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	_, err = svc.Update(ctx, uuid.Nil, &dto.UpdateNoteRequest{Id: uuid.New()})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	err = svc.Delete(ctx, uuid.Nil, uuid.New())
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	_, err = svc.List(ctx, uuid.Nil)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}
