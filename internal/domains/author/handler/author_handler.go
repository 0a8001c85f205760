package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management-api/internal/domains/author/model"
	"book-management-api/internal/domains/author/service"
	bookmodel "book-management-api/internal/domains/book/model"
	"book-management-api/internal/shared/request"
	"book-management-api/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// AuthorBooksResponse - author together with the books they wrote
type AuthorBooksResponse struct {
	Author *model.AuthorResponse     `json:"author"`
	Books  []*bookmodel.BookResponse `json:"books"`
}

// Create handles POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.CreatedResponse{ID: id})
}

// Update handles PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid author id")
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// GetWithBooks handles GET /authors/:id/books
func (h *AuthorHandler) GetWithBooks(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid author id")
		return
	}

	author, books, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	bookResponses := make([]*bookmodel.BookResponse, 0, len(books))
	for i := range books {
		bookResponses = append(bookResponses, books[i].ToResponse())
	}

	response.Success(c, http.StatusOK, AuthorBooksResponse{
		Author: author.ToResponse(),
		Books:  bookResponses,
	})
}

// List handles GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	req := model.ListAuthorsRequest{
		Page: request.QueryInt(c, "page", 1),
		Size: request.QueryInt(c, "size", 20),
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid pagination", err)
		return
	}

	authors, total, err := h.service.List(c.Request.Context(), req.Page, req.Size)
	if err != nil {
		h.mapError(c, err)
		return
	}

	items := make([]*model.AuthorResponse, 0, len(authors))
	for i := range authors {
		items = append(items, authors[i].ToResponse())
	}

	response.Paged(c, http.StatusOK, items, response.NewPaginationInfo(req.Page, req.Size, total))
}

func (h *AuthorHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "AUTHOR_NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrVersionConflict):
		response.ErrorResponse(c, http.StatusConflict, "VERSION_CONFLICT", err.Error())
	case errors.Is(err, model.ErrInvalidName), errors.Is(err, model.ErrBirthDateInFuture):
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
