package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// CreateBookRequest - payload for POST /books
type CreateBookRequest struct {
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	CurrencyCode      string          `json:"currency_code"`
	PublicationStatus string          `json:"publication_status"`
	AuthorIDs         []int64         `json:"author_ids"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Price,
			validation.By(checkPrice),
		),
		validation.Field(&r.CurrencyCode,
			validation.Required.Error("currency code is required"),
			validation.Match(currencyCodePattern).Error("currency code must be 3 uppercase letters"),
		),
		validation.Field(&r.PublicationStatus,
			validation.Required.Error("publication status is required"),
			validation.In(string(StatusUnpublished), string(StatusPublished)).
				Error("publication status must be UNPUBLISHED or PUBLISHED"),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("at least one author is required"),
			validation.Each(validation.Required, validation.Min(1)),
		),
	)
}

// UpdateBookRequest - payload for PUT /books/:id.
// Version must carry the version the client read.
type UpdateBookRequest struct {
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	CurrencyCode      string          `json:"currency_code"`
	PublicationStatus string          `json:"publication_status"`
	AuthorIDs         []int64         `json:"author_ids"`
	Version           int             `json:"version"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Price,
			validation.By(checkPrice),
		),
		validation.Field(&r.CurrencyCode,
			validation.Required.Error("currency code is required"),
			validation.Match(currencyCodePattern).Error("currency code must be 3 uppercase letters"),
		),
		validation.Field(&r.PublicationStatus,
			validation.Required.Error("publication status is required"),
			validation.In(string(StatusUnpublished), string(StatusPublished)).
				Error("publication status must be UNPUBLISHED or PUBLISHED"),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("at least one author is required"),
			validation.Each(validation.Required, validation.Min(1)),
		),
		validation.Field(&r.Version,
			validation.Required.Error("version is required"),
			validation.Min(1),
		),
	)
}

// checkPrice enforces the numeric(12,2) bounds: non-negative, at most 10
// integer digits and at most 2 fraction digits.
func checkPrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_price", "must be a decimal number")
	}
	if price.IsNegative() {
		return validation.NewError("validation_price", "must be greater than or equal to 0")
	}
	if !price.Equal(price.Truncate(PriceMaxFractionDigits)) {
		return validation.NewError("validation_price", "must have at most 2 fraction digits")
	}
	if price.Abs().GreaterThanOrEqual(decimal.New(1, PriceMaxIntegerDigits)) {
		return validation.NewError("validation_price", "must have at most 10 integer digits")
	}
	return nil
}

// ListBooksRequest - query parameters for GET /books.
// Page is 1-based; Size is bounded to keep single responses small.
type ListBooksRequest struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (r ListBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Required, validation.Min(1)),
		validation.Field(&r.Size, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// BookResponse - book representation returned to clients
type BookResponse struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Price             decimal.Decimal   `json:"price"`
	CurrencyCode      string            `json:"currency_code"`
	PublicationStatus PublicationStatus `json:"publication_status"`
	AuthorIDs         []int64           `json:"author_ids"`
	Version           int               `json:"version"`
}

// ToResponse converts Book to BookResponse.
func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:                b.ID,
		Title:             b.Title,
		Price:             b.Price,
		CurrencyCode:      b.CurrencyCode,
		PublicationStatus: b.PublicationStatus,
		AuthorIDs:         b.AuthorIDs,
		Version:           b.Version,
	}
}

// AuthorSummary - embedded author info on list responses
type AuthorSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// BookWithAuthorsResponse - list item carrying resolved author summaries
type BookWithAuthorsResponse struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Price             decimal.Decimal   `json:"price"`
	CurrencyCode      string            `json:"currency_code"`
	PublicationStatus PublicationStatus `json:"publication_status"`
	Authors           []AuthorSummary   `json:"authors"`
	Version           int               `json:"version"`
}

// CreatedResponse - body returned after a successful create
type CreatedResponse struct {
	ID int64 `json:"id"`
}
