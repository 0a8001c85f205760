package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management-api/internal/domains/author/model"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Create inserts a new author row with version 1.
func (r *postgresRepository) Create(ctx context.Context, author *model.NewAuthor) (int64, error) {
	query := `
        INSERT INTO authors (name, birth_date, version, created_at, updated_at)
        VALUES ($1, $2, 1, now(), now())
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query, author.Name, author.BirthDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create author: %w", err)
	}
	if id == 0 {
		return 0, model.ErrNoInsertID
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, birth_date, version
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BirthDate, &a.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}

	query := `
        SELECT id, name, birth_date, version
        FROM authors
        WHERE id = ANY($1)
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors by ids: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0, len(ids))
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.Version); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) FindAllWithPagination(ctx context.Context, page, size int) ([]model.Author, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	offset := (page - 1) * size
	if int64(offset) >= total {
		// Past the last page: skip the row query, the count is still valid.
		return []model.Author{}, total, nil
	}

	query := `
        SELECT id, name, birth_date, version
        FROM authors
        ORDER BY id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.Version); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, total, nil
}

// Update performs the version-checked conditional write. The WHERE clause is
// the whole concurrency story: a stale version matches no row.
func (r *postgresRepository) Update(ctx context.Context, author *model.Author) (int64, error) {
	query := `
        UPDATE authors
        SET name = $1,
            birth_date = $2,
            version = version + 1,
            updated_at = now()
        WHERE id = $3 AND version = $4
    `

	cmdTag, err := r.pool.Exec(ctx, query, author.Name, author.BirthDate, author.ID, author.Version)
	if err != nil {
		return 0, fmt.Errorf("failed to update author: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
