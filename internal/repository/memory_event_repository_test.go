package repository

import (
	"context"
	"testing"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository()

	var ids []string
	for _, title := range []string{"A", "B", "C", "D"} {
		created, err := repo.Create(ctx, &model.Event{Title: title, Date: "2024-03-15"})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	require.NoError(t, repo.Delete(ctx, ids[0]))
	require.NoError(t, repo.Delete(ctx, ids[2]))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.NotEqual(t, ids[0], e.ID)
		assert.NotEqual(t, ids[2], e.ID)
	}
}

func TestMemoryEventRepository_DeleteUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository()
	_, err := repo.Create(ctx, &model.Event{Title: "Dentist", Date: "2024-03-15"})
	require.NoError(t, err)

	err = repo.Delete(ctx, "unknown")

	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMemoryEventRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository()
	created, err := repo.Create(ctx, &model.Event{Title: "Dentist", Date: "2024-03-15"})
	require.NoError(t, err)

	created.Title = "changed"

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Title)
}

func TestMemoryEventRepository_Validation(t *testing.T) {
	_, err := NewMemoryEventRepository().Create(context.Background(), &model.Event{})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
