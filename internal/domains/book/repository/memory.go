package repository

import (
	"context"
	"sort"
	"sync"

	"book-management-api/internal/domains/book/model"
)

// memoryRepository is the in-memory RepositoryInterface implementation used
// by service tests. The book row and its association set are stored together
// and swapped atomically, mirroring the transactional guarantees of the
// postgres implementation, including the CAS behavior of Update.
type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	books  map[int64]model.Book
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		nextID: 1,
		books:  make(map[int64]model.Book),
	}
}

func (r *memoryRepository) Create(_ context.Context, book *model.NewBook) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	r.books[id] = model.Book{
		ID:                id,
		Title:             book.Title,
		Price:             book.Price,
		CurrencyCode:      book.CurrencyCode,
		PublicationStatus: book.PublicationStatus,
		AuthorIDs:         sortedCopy(book.AuthorIDs),
		Version:           1,
	}

	return id, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}

	b.AuthorIDs = sortedCopy(b.AuthorIDs)
	return &b, nil
}

func (r *memoryRepository) FindByAuthorID(_ context.Context, authorID int64) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var books []model.Book
	for _, b := range r.books {
		for _, id := range b.AuthorIDs {
			if id == authorID {
				b.AuthorIDs = sortedCopy(b.AuthorIDs)
				books = append(books, b)
				break
			}
		}
	}

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (r *memoryRepository) FindAllWithPagination(_ context.Context, page, size int) ([]model.Book, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		b.AuthorIDs = sortedCopy(b.AuthorIDs)
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	offset := (page - 1) * size
	if int64(offset) >= total {
		return []model.Book{}, total, nil
	}

	end := offset + size
	if int64(end) > total {
		end = int(total)
	}

	return all[offset:end], total, nil
}

func (r *memoryRepository) Update(_ context.Context, book *model.Book) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.books[book.ID]
	if !ok || current.Version != book.Version {
		// Stale version: row and associations stay untouched.
		return 0, nil
	}

	r.books[book.ID] = model.Book{
		ID:                book.ID,
		Title:             book.Title,
		Price:             book.Price,
		CurrencyCode:      book.CurrencyCode,
		PublicationStatus: book.PublicationStatus,
		AuthorIDs:         sortedCopy(book.AuthorIDs),
		Version:           book.Version + 1,
	}

	return 1, nil
}

func sortedCopy(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
