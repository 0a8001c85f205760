package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-api/internal/domains/author/model"
	"book-management-api/internal/domains/author/repository"
	bookmodel "book-management-api/internal/domains/book/model"
	bookrepo "book-management-api/internal/domains/book/repository"
	"book-management-api/internal/shared/clock"
)

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (ServiceInterface, repository.RepositoryInterface, bookrepo.RepositoryInterface) {
	t.Helper()
	authorRepo := repository.NewMemoryRepository()
	bookRepo := bookrepo.NewMemoryRepository()
	svc := NewAuthorService(authorRepo, bookRepo, clock.FixedTimeProvider{Date: testToday})
	return svc, authorRepo, bookRepo
}

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates author with version 1", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		id, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Ursula K. Le Guin",
			BirthDate:      "1929-10-21",
			ClientTimeZone: "America/Los_Angeles",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		author, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Ursula K. Le Guin", author.Name)
		assert.Equal(t, 1, author.Version)
	})

	t.Run("trims the name", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		id, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "  Octavia Butler  ",
			BirthDate:      "1947-06-22",
			ClientTimeZone: "UTC",
		})
		require.NoError(t, err)

		author, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Octavia Butler", author.Name)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "   ",
			BirthDate:      "1929-10-21",
			ClientTimeZone: "UTC",
		})
		assert.ErrorIs(t, err, model.ErrInvalidName)
	})

	t.Run("accepts birth date on the current date", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Newborn",
			BirthDate:      "2024-06-01",
			ClientTimeZone: "UTC",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects birth date in the future", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Time Traveller",
			BirthDate:      "2030-01-01",
			ClientTimeZone: "UTC",
		})
		assert.ErrorIs(t, err, model.ErrBirthDateInFuture)
	})

	t.Run("accepts birth date on the previous day", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Newborn",
			BirthDate:      "2024-05-31",
			ClientTimeZone: "UTC",
		})
		assert.NoError(t, err)
	})
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc ServiceInterface) int64 {
		t.Helper()
		id, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Original Name",
			BirthDate:      "1950-01-01",
			ClientTimeZone: "UTC",
		})
		require.NoError(t, err)
		return id
	}

	t.Run("increments version on success", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		id := create(t, svc)

		err := svc.Update(ctx, id, &model.UpdateAuthorRequest{
			Name:           "Updated Name",
			BirthDate:      "1950-01-02",
			Version:        1,
			ClientTimeZone: "UTC",
		})
		require.NoError(t, err)

		author, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Updated Name", author.Name)
		assert.Equal(t, 2, author.Version)
	})

	t.Run("missing author", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.Update(ctx, 42, &model.UpdateAuthorRequest{
			Name:           "Nobody",
			BirthDate:      "1950-01-01",
			Version:        1,
			ClientTimeZone: "UTC",
		})
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		id := create(t, svc)

		first := &model.UpdateAuthorRequest{
			Name:           "First Writer",
			BirthDate:      "1950-01-01",
			Version:        1,
			ClientTimeZone: "UTC",
		}
		require.NoError(t, svc.Update(ctx, id, first))

		second := &model.UpdateAuthorRequest{
			Name:           "Second Writer",
			BirthDate:      "1950-01-01",
			Version:        1,
			ClientTimeZone: "UTC",
		}
		err := svc.Update(ctx, id, second)
		assert.ErrorIs(t, err, model.ErrVersionConflict)
	})

	t.Run("rejects future birth date", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		id := create(t, svc)

		err := svc.Update(ctx, id, &model.UpdateAuthorRequest{
			Name:           "Original Name",
			BirthDate:      "2030-01-01",
			Version:        1,
			ClientTimeZone: "UTC",
		})
		assert.ErrorIs(t, err, model.ErrBirthDateInFuture)
	})
}

func TestAuthorService_GetWithBooks(t *testing.T) {
	ctx := context.Background()
	svc, _, bookRepo := newTestService(t)

	id, err := svc.Create(ctx, &model.CreateAuthorRequest{
		Name:           "Prolific Writer",
		BirthDate:      "1950-01-01",
		ClientTimeZone: "UTC",
	})
	require.NoError(t, err)

	for _, title := range []string{"First Book", "Second Book"} {
		_, err := bookRepo.Create(ctx, &bookmodel.NewBook{
			Title:             title,
			Price:             decimal.NewFromFloat(19.99),
			CurrencyCode:      "USD",
			PublicationStatus: bookmodel.StatusPublished,
			AuthorIDs:         []int64{id},
		})
		require.NoError(t, err)
	}

	t.Run("returns author and their books", func(t *testing.T) {
		author, books, err := svc.GetWithBooks(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Prolific Writer", author.Name)
		require.Len(t, books, 2)
		assert.Equal(t, "First Book", books[0].Title)
	})

	t.Run("missing author", func(t *testing.T) {
		_, _, err := svc.GetWithBooks(ctx, 42)
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})
}

func TestAuthorService_List(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &model.CreateAuthorRequest{
			Name:           "Author",
			BirthDate:      "1950-01-01",
			ClientTimeZone: "UTC",
		})
		require.NoError(t, err)
	}

	authors, total, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, authors, 2)

	authors, total, err = svc.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, authors)
}
