package service

import (
	"context"
	"strings"

	authormodel "book-management-api/internal/domains/author/model"
	authorrepo "book-management-api/internal/domains/author/repository"
	"book-management-api/internal/domains/book/model"
	"book-management-api/internal/domains/book/repository"
)

// bookService is the aggregate write coordinator: it validates references and
// status transitions before any write is issued, and translates the store's
// affected-row counts into conflict errors afterwards.
type bookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
}

func NewBookService(
	repo repository.RepositoryInterface,
	authorRepo authorrepo.RepositoryInterface,
) ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

// Create builds and persists a new book aggregate. There is no prior status
// on creation, so the transition rule is not consulted; the requested status
// is stored as-is.
func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (int64, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return 0, model.ErrInvalidTitle
	}

	status, err := model.ParsePublicationStatus(req.PublicationStatus)
	if err != nil {
		return 0, err
	}

	authorIDs := dedupeIDs(req.AuthorIDs)
	if err := s.checkAuthorsExist(ctx, authorIDs); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &model.NewBook{
		Title:             title,
		Price:             req.Price,
		CurrencyCode:      req.CurrencyCode,
		PublicationStatus: status,
		AuthorIDs:         authorIDs,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites a book aggregate under optimistic concurrency control.
// Validation failures short-circuit before any database write; a zero
// affected-row count afterwards is a version conflict, never a no-op.
func (s *bookService) Update(ctx context.Context, id int64, req *model.UpdateBookRequest) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	status, err := model.ParsePublicationStatus(req.PublicationStatus)
	if err != nil {
		return err
	}

	if !current.CanUpdatePublicationStatus(status) {
		return &model.InvalidStatusTransitionError{
			From: current.PublicationStatus,
			To:   status,
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.ErrInvalidTitle
	}

	authorIDs := dedupeIDs(req.AuthorIDs)
	if err := s.checkAuthorsExist(ctx, authorIDs); err != nil {
		return err
	}

	updated := &model.Book{
		ID:                id,
		Title:             title,
		Price:             req.Price,
		CurrencyCode:      req.CurrencyCode,
		PublicationStatus: status,
		AuthorIDs:         authorIDs,
		Version:           req.Version,
	}

	affected, err := s.repo.Update(ctx, updated)
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrVersionConflict
	}

	return nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns one page of books with their author summaries resolved via a
// single bulk author fetch across the whole page.
func (s *bookService) List(ctx context.Context, page, size int) ([]model.BookWithAuthorsResponse, int64, error) {
	books, total, err := s.repo.FindAllWithPagination(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}

	var allAuthorIDs []int64
	for _, b := range books {
		allAuthorIDs = append(allAuthorIDs, b.AuthorIDs...)
	}

	authors, err := s.authorRepo.FindByIDs(ctx, dedupeIDs(allAuthorIDs))
	if err != nil {
		return nil, 0, err
	}

	authorsByID := make(map[int64]authormodel.Author, len(authors))
	for _, a := range authors {
		authorsByID[a.ID] = a
	}

	responses := make([]model.BookWithAuthorsResponse, 0, len(books))
	for _, b := range books {
		summaries := make([]model.AuthorSummary, 0, len(b.AuthorIDs))
		for _, authorID := range b.AuthorIDs {
			if a, ok := authorsByID[authorID]; ok {
				summaries = append(summaries, model.AuthorSummary{
					ID:        a.ID,
					Name:      a.Name,
					BirthDate: a.BirthDate.Format(authormodel.DateLayout),
				})
			}
		}

		responses = append(responses, model.BookWithAuthorsResponse{
			ID:                b.ID,
			Title:             b.Title,
			Price:             b.Price,
			CurrencyCode:      b.CurrencyCode,
			PublicationStatus: b.PublicationStatus,
			Authors:           summaries,
			Version:           b.Version,
		})
	}

	return responses, total, nil
}

// checkAuthorsExist verifies every referenced author in one batched read and
// reports the missing subset, not the whole request.
func (s *bookService) checkAuthorsExist(ctx context.Context, authorIDs []int64) error {
	existing, err := s.authorRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	if len(existing) == len(authorIDs) {
		return nil
	}

	found := make(map[int64]struct{}, len(existing))
	for _, a := range existing {
		found[a.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range authorIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return &model.AuthorsNotFoundError{MissingIDs: missing}
}

// dedupeIDs collapses duplicates while preserving first-seen order.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
