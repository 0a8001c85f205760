package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"book-management-api/internal/domains/author/model"
	"book-management-api/internal/domains/author/repository"
	bookmodel "book-management-api/internal/domains/book/model"
	bookrepo "book-management-api/internal/domains/book/repository"
	"book-management-api/internal/shared/clock"
)

// authorService coordinates author writes: request-level rules first, then a
// single store call whose affected-row count decides the outcome.
type authorService struct {
	repo         repository.RepositoryInterface
	bookRepo     bookrepo.RepositoryInterface
	timeProvider clock.TimeProvider
}

func NewAuthorService(
	repo repository.RepositoryInterface,
	bookRepo bookrepo.RepositoryInterface,
	timeProvider clock.TimeProvider,
) ServiceInterface {
	return &authorService{
		repo:         repo,
		bookRepo:     bookRepo,
		timeProvider: timeProvider,
	}
}

// Create inserts a new author and returns the generated id.
func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, model.ErrInvalidName
	}

	birthDate, err := req.ParsedBirthDate()
	if err != nil {
		return 0, fmt.Errorf("invalid birth date: %w", err)
	}

	if err := s.checkBirthDate(ctx, birthDate, req.ClientTimeZone); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &model.NewAuthor{
		Name:      name,
		BirthDate: birthDate,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites an author under optimistic concurrency control. A zero
// affected-row count from the store is a version conflict, never a no-op.
func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ErrInvalidName
	}

	birthDate, err := req.ParsedBirthDate()
	if err != nil {
		return fmt.Errorf("invalid birth date: %w", err)
	}

	if err := s.checkBirthDate(ctx, birthDate, req.ClientTimeZone); err != nil {
		return err
	}

	updated := &model.Author{
		ID:        id,
		Name:      name,
		BirthDate: birthDate,
		Version:   req.Version,
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

// GetWithBooks returns the author together with every book they wrote.
func (s *authorService) GetWithBooks(ctx context.Context, id int64) (*model.Author, []bookmodel.Book, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.bookRepo.FindByAuthorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return author, books, nil
}

func (s *authorService) List(ctx context.Context, page, size int) ([]model.Author, int64, error) {
	return s.repo.FindAllWithPagination(ctx, page, size)
}

// checkBirthDate enforces that the birth date does not lie after the
// current date in the client's timezone. Being born today is allowed.
func (s *authorService) checkBirthDate(ctx context.Context, birthDate time.Time, clientTimeZone string) error {
	today, err := s.timeProvider.CurrentDate(ctx, clientTimeZone)
	if err != nil {
		return err
	}

	if birthDate.After(today) {
		return model.ErrBirthDateInFuture
	}

	return nil
}
