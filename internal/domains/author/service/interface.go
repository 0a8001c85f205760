package service

import (
	"context"

	"book-management-api/internal/domains/author/model"
	bookmodel "book-management-api/internal/domains/book/model"
)

// ServiceInterface exposes the author use cases to the boundary layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (int64, error)
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error
	GetWithBooks(ctx context.Context, id int64) (*model.Author, []bookmodel.Book, error)
	List(ctx context.Context, page, size int) ([]model.Author, int64, error)
}
