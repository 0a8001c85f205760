package repository

import (
	"context"
	"sort"
	"sync"

	"book-management-api/internal/domains/author/model"
)

// memoryRepository is the in-memory RepositoryInterface implementation used
// by service tests. It reproduces the compare-and-swap semantics of the
// conditional update so optimistic-lock paths can be exercised without a
// database.
type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	authors map[int64]model.Author
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		nextID:  1,
		authors: make(map[int64]model.Author),
	}
}

func (r *memoryRepository) Create(_ context.Context, author *model.NewAuthor) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	r.authors[id] = model.Author{
		ID:        id,
		Name:      author.Name,
		BirthDate: author.BirthDate,
		Version:   1,
	}

	return id, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}

	return &a, nil
}

func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.authors[id]
	return ok, nil
}

func (r *memoryRepository) FindByIDs(_ context.Context, ids []int64) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	authors := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.authors[id]; ok {
			authors = append(authors, a)
		}
	}

	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors, nil
}

func (r *memoryRepository) FindAllWithPagination(_ context.Context, page, size int) ([]model.Author, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Author, 0, len(r.authors))
	for _, a := range r.authors {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	offset := (page - 1) * size
	if int64(offset) >= total {
		return []model.Author{}, total, nil
	}

	end := offset + size
	if int64(end) > total {
		end = int(total)
	}

	return all[offset:end], total, nil
}

func (r *memoryRepository) Update(_ context.Context, author *model.Author) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.authors[author.ID]
	if !ok || current.Version != author.Version {
		return 0, nil
	}

	r.authors[author.ID] = model.Author{
		ID:        author.ID,
		Name:      author.Name,
		BirthDate: author.BirthDate,
		Version:   author.Version + 1,
	}

	return 1, nil
}
