package repository

import (
	"context"

	"book-management-api/internal/domains/author/model"
)

// RepositoryInterface is the author store contract. One production
// implementation (postgres) and one in-memory implementation for tests.
type RepositoryInterface interface {
	// Create inserts the author with version 1 and returns the generated id.
	Create(ctx context.Context, author *model.NewAuthor) (int64, error)

	// FindByID returns model.ErrAuthorNotFound when the id does not exist.
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByIDs returns only the authors that exist. Empty input returns
	// empty output without touching the database.
	FindByIDs(ctx context.Context, ids []int64) ([]model.Author, error)

	FindAllWithPagination(ctx context.Context, page, size int) ([]model.Author, int64, error)

	// Update performs the conditional write
	// `UPDATE ... WHERE id = ? AND version = ?` and returns the affected row
	// count. Zero means the version was stale (or the row is gone) - the
	// caller decides how to surface that.
	Update(ctx context.Context, author *model.Author) (int64, error)
}
