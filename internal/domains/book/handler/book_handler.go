package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management-api/internal/domains/book/model"
	"book-management-api/internal/domains/book/service"
	"book-management-api/internal/shared/request"
	"book-management-api/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
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

// Update handles PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid book id")
		return
	}

	var req model.UpdateBookRequest
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

// Get handles GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid book id")
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

// List handles GET /books
func (h *BookHandler) List(c *gin.Context) {
	req := model.ListBooksRequest{
		Page: request.QueryInt(c, "page", 1),
		Size: request.QueryInt(c, "size", 20),
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid pagination", err)
		return
	}

	books, total, err := h.service.List(c.Request.Context(), req.Page, req.Size)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Paged(c, http.StatusOK, books, response.NewPaginationInfo(req.Page, req.Size, total))
}

func (h *BookHandler) mapError(c *gin.Context, err error) {
	var authorsNotFound *model.AuthorsNotFoundError
	var invalidTransition *model.InvalidStatusTransitionError

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.ErrorResponse(c, http.StatusNotFound, "BOOK_NOT_FOUND", err.Error())
	case errors.As(err, &authorsNotFound):
		response.ErrorWithDetails(c, http.StatusBadRequest, "AUTHORS_NOT_FOUND", err.Error(),
			gin.H{"missing_author_ids": authorsNotFound.MissingIDs})
	case errors.As(err, &invalidTransition):
		response.ErrorResponse(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", err.Error())
	case errors.Is(err, model.ErrVersionConflict):
		response.ErrorResponse(c, http.StatusConflict, "VERSION_CONFLICT", err.Error())
	case errors.Is(err, model.ErrInvalidTitle):
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

