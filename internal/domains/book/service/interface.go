package service

import (
	"context"

	"book-management-api/internal/domains/book/model"
)

// ServiceInterface exposes the book use cases to the boundary layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (int64, error)
	Update(ctx context.Context, id int64, req *model.UpdateBookRequest) error
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, page, size int) ([]model.BookWithAuthorsResponse, int64, error)
}
