package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management-api/internal/domains/book/model"
	"book-management-api/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool with raw SQL.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const insertAssociationQuery = `
        INSERT INTO book_authors (book_id, author_id)
        VALUES ($1, $2)
    `

// Create inserts the book row and its association rows in one transaction.
// If the insert yields no id the transaction aborts, so no association rows
// can outlive a failed book insert.
func (r *postgresRepository) Create(ctx context.Context, book *model.NewBook) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
            INSERT INTO books (title, price, currency_code, publication_status, version, created_at, updated_at)
            VALUES ($1, $2, $3, $4, 1, now(), now())
            RETURNING id
        `

		var id int64
		err := tx.QueryRow(ctx, query,
			book.Title,
			book.Price,
			book.CurrencyCode,
			book.PublicationStatus.Code(),
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to create book: %w", err)
		}
		if id == 0 {
			return 0, model.ErrNoInsertID
		}

		if err := insertAssociations(ctx, tx, id, book.AuthorIDs); err != nil {
			return 0, err
		}

		return id, nil
	})
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT id, title, price, currency_code, publication_status, version
        FROM books
        WHERE id = $1
    `

	var b model.Book
	var statusCode string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Price, &b.CurrencyCode, &statusCode, &b.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	b.PublicationStatus, err = model.StatusFromCode(statusCode)
	if err != nil {
		return nil, err
	}

	authorIDs, err := r.fetchAuthorIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	b.AuthorIDs = authorIDs

	return &b, nil
}

// FindByAuthorID is a two-phase read: book ids from the association table,
// then one bulk fetch of the books and one bulk fetch of all their
// associations. Keeps the query count flat regardless of result size.
func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	bookIDs, err := r.fetchBookIDs(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(bookIDs) == 0 {
		return []model.Book{}, nil
	}

	books, err := r.fetchBooks(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	authorsByBook, err := r.fetchAssociations(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	for i := range books {
		books[i].AuthorIDs = authorsByBook[books[i].ID]
	}

	return books, nil
}

func (r *postgresRepository) FindAllWithPagination(ctx context.Context, page, size int) ([]model.Book, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	offset := (page - 1) * size
	if int64(offset) >= total {
		// Past the last page: skip the row query, the count is still valid.
		return []model.Book{}, total, nil
	}

	query := `
        SELECT id, title, price, currency_code, publication_status, version
        FROM books
        ORDER BY id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	if len(books) == 0 {
		return books, total, nil
	}

	bookIDs := make([]int64, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}

	authorsByBook, err := r.fetchAssociations(ctx, bookIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range books {
		books[i].AuthorIDs = authorsByBook[books[i].ID]
	}

	return books, total, nil
}

// Update performs the version-checked conditional write on the book row and
// replaces the association rows only when that write affected exactly one
// row. A stale version commits as a no-op with the associations untouched;
// the returned count tells the caller what happened.
func (r *postgresRepository) Update(ctx context.Context, book *model.Book) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
            UPDATE books
            SET title = $1,
                price = $2,
                currency_code = $3,
                publication_status = $4,
                version = version + 1,
                updated_at = now()
            WHERE id = $5 AND version = $6
        `

		cmdTag, err := tx.Exec(ctx, query,
			book.Title,
			book.Price,
			book.CurrencyCode,
			book.PublicationStatus.Code(),
			book.ID,
			book.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to update book: %w", err)
		}

		affected := cmdTag.RowsAffected()
		if affected != 1 {
			return affected, nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, book.ID); err != nil {
			return 0, fmt.Errorf("failed to delete book authors: %w", err)
		}

		if err := insertAssociations(ctx, tx, book.ID, book.AuthorIDs); err != nil {
			return 0, err
		}

		return affected, nil
	})
}

// insertAssociations batch-inserts one association row per author id.
func insertAssociations(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, authorID := range authorIDs {
		batch.Queue(insertAssociationQuery, bookID, authorID)
	}

	results := tx.SendBatch(ctx, batch)
	for range authorIDs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert book author: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	return nil
}

func (r *postgresRepository) fetchAuthorIDs(ctx context.Context, bookID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book authors: %w", err)
	}
	defer rows.Close()

	var authorIDs []int64
	for rows.Next() {
		var authorID int64
		if err := rows.Scan(&authorID); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		authorIDs = append(authorIDs, authorID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book authors: %w", err)
	}

	return authorIDs, nil
}

func (r *postgresRepository) fetchBookIDs(ctx context.Context, authorID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT book_id FROM book_authors WHERE author_id = $1`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	var bookIDs []int64
	for rows.Next() {
		var bookID int64
		if err := rows.Scan(&bookID); err != nil {
			return nil, fmt.Errorf("failed to scan book id: %w", err)
		}
		bookIDs = append(bookIDs, bookID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book ids: %w", err)
	}

	return bookIDs, nil
}

func (r *postgresRepository) fetchBooks(ctx context.Context, bookIDs []int64) ([]model.Book, error) {
	query := `
        SELECT id, title, price, currency_code, publication_status, version
        FROM books
        WHERE id = ANY($1)
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	return scanBooks(rows)
}

// fetchAssociations returns the author id sets for all given books in a
// single query, keyed by book id.
func (r *postgresRepository) fetchAssociations(ctx context.Context, bookIDs []int64) (map[int64][]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT book_id, author_id FROM book_authors WHERE book_id = ANY($1) ORDER BY author_id`, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query book authors: %w", err)
	}
	defer rows.Close()

	authorsByBook := make(map[int64][]int64, len(bookIDs))
	for rows.Next() {
		var bookID, authorID int64
		if err := rows.Scan(&bookID, &authorID); err != nil {
			return nil, fmt.Errorf("failed to scan book author: %w", err)
		}
		authorsByBook[bookID] = append(authorsByBook[bookID], authorID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book authors: %w", err)
	}

	return authorsByBook, nil
}

func scanBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		var statusCode string
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.CurrencyCode, &statusCode, &b.Version); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		status, err := model.StatusFromCode(statusCode)
		if err != nil {
			return nil, err
		}
		b.PublicationStatus = status

		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
