package repository

import (
	"context"

	"book-management-api/internal/domains/book/model"
)

// RepositoryInterface is the book store contract: the book row and its
// author-association rows are one consistency unit, so every write here is
// transactional. One production implementation (postgres) and one in-memory
// implementation for tests.
type RepositoryInterface interface {
	// Create inserts the book row with version 1 and one association row per
	// author id, all in one transaction. Returns the generated id.
	Create(ctx context.Context, book *model.NewBook) (int64, error)

	// FindByID returns the book with its full author id set, or
	// model.ErrBookNotFound.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// FindByAuthorID returns every book the author participates in, each with
	// its complete author id set (bulk queries, no per-book fetches).
	FindByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error)

	// FindAllWithPagination returns the page (1-based) and the total count.
	// Pages past the end return an empty list with the count intact.
	FindAllWithPagination(ctx context.Context, page, size int) ([]model.Book, int64, error)

	// Update conditionally rewrites the book row (id + version match) and,
	// only when exactly one row was affected, replaces the association rows -
	// all in one transaction. Returns the affected row count of the
	// conditional update; zero means the caller hit a stale version.
	Update(ctx context.Context, book *model.Book) (int64, error)
}
