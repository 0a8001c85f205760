package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-api/internal/domains/author/model"
)

func newAuthor(name string) *model.NewAuthor {
	return &model.NewAuthor{
		Name:      name,
		BirthDate: time.Date(1960, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	id, err := repo.Create(ctx, newAuthor("Original"))
	require.NoError(t, err)

	t.Run("matching version wins", func(t *testing.T) {
		affected, err := repo.Update(ctx, &model.Author{
			ID:        id,
			Name:      "Renamed",
			BirthDate: time.Date(1960, 3, 15, 0, 0, 0, 0, time.UTC),
			Version:   1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		author, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", author.Name)
		assert.Equal(t, 2, author.Version)
	})

	t.Run("stale version loses", func(t *testing.T) {
		affected, err := repo.Update(ctx, &model.Author{
			ID:      id,
			Name:    "Stale",
			Version: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		author, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", author.Name)
	})
}

func TestMemoryRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, newAuthor(name))
		require.NoError(t, err)
	}

	t.Run("empty input short-circuits", func(t *testing.T) {
		authors, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, authors)
	})

	t.Run("returns only the existing subset", func(t *testing.T) {
		authors, err := repo.FindByIDs(ctx, []int64{3, 1, 99})
		require.NoError(t, err)
		require.Len(t, authors, 2)
		assert.Equal(t, int64(1), authors[0].ID)
		assert.Equal(t, int64(3), authors[1].ID)
	})
}

func TestMemoryRepository_FindAllWithPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newAuthor("Author"))
		require.NoError(t, err)
	}

	authors, total, err := repo.FindAllWithPagination(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, authors, 2)
	assert.Equal(t, int64(3), authors[0].ID)

	authors, total, err = repo.FindAllWithPagination(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, authors)
}
