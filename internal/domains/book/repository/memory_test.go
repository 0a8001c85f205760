package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-api/internal/domains/book/model"
)

func newBook(authorIDs ...int64) *model.NewBook {
	return &model.NewBook{
		Title:             "Some Title",
		Price:             decimal.NewFromFloat(10.00),
		CurrencyCode:      "USD",
		PublicationStatus: model.StatusUnpublished,
		AuthorIDs:         authorIDs,
	}
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("matching version swaps row and associations", func(t *testing.T) {
		repo := NewMemoryRepository()
		id, err := repo.Create(ctx, newBook(1, 2))
		require.NoError(t, err)

		affected, err := repo.Update(ctx, &model.Book{
			ID:                id,
			Title:             "New Title",
			Price:             decimal.NewFromFloat(12.50),
			CurrencyCode:      "USD",
			PublicationStatus: model.StatusPublished,
			AuthorIDs:         []int64{2, 3},
			Version:           1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		book, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "New Title", book.Title)
		assert.Equal(t, []int64{2, 3}, book.AuthorIDs)
		assert.Equal(t, 2, book.Version)
	})

	t.Run("stale version affects nothing", func(t *testing.T) {
		repo := NewMemoryRepository()
		id, err := repo.Create(ctx, newBook(1))
		require.NoError(t, err)

		affected, err := repo.Update(ctx, &model.Book{
			ID:                id,
			Title:             "Stale Write",
			Price:             decimal.Zero,
			CurrencyCode:      "USD",
			PublicationStatus: model.StatusPublished,
			AuthorIDs:         []int64{1},
			Version:           7,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		book, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Some Title", book.Title)
		assert.Equal(t, 1, book.Version)
	})

	t.Run("unknown id affects nothing", func(t *testing.T) {
		repo := NewMemoryRepository()
		affected, err := repo.Update(ctx, &model.Book{ID: 42, Version: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestMemoryRepository_FindByAuthorID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	id1, err := repo.Create(ctx, newBook(1, 2))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBook(2))
	require.NoError(t, err)
	id3, err := repo.Create(ctx, newBook(1))
	require.NoError(t, err)

	books, err := repo.FindByAuthorID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, id1, books[0].ID)
	assert.Equal(t, id3, books[1].ID)

	books, err = repo.FindByAuthorID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestMemoryRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
