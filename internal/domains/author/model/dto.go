package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateAuthorRequest - payload for POST /authors
type CreateAuthorRequest struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date"`
	ClientTimeZone string `json:"client_time_zone"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth date is required"),
			validation.Date(DateLayout).Error("birth date must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.ClientTimeZone,
			validation.Required.Error("client time zone is required"),
			validation.By(checkTimeZone),
		),
	)
}

// ParsedBirthDate returns the birth date as a time.Time.
// Call only after Validate has passed.
func (r CreateAuthorRequest) ParsedBirthDate() (time.Time, error) {
	return time.Parse(DateLayout, r.BirthDate)
}

// UpdateAuthorRequest - payload for PUT /authors/:id.
// Version must carry the version the client read; a stale value is rejected
// as a conflict by the update path.
type UpdateAuthorRequest struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date"`
	Version        int    `json:"version"`
	ClientTimeZone string `json:"client_time_zone"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth date is required"),
			validation.Date(DateLayout).Error("birth date must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Version,
			validation.Required.Error("version is required"),
			validation.Min(1),
		),
		validation.Field(&r.ClientTimeZone,
			validation.Required.Error("client time zone is required"),
			validation.By(checkTimeZone),
		),
	)
}

func (r UpdateAuthorRequest) ParsedBirthDate() (time.Time, error) {
	return time.Parse(DateLayout, r.BirthDate)
}

func checkTimeZone(value interface{}) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return validation.NewError("validation_timezone", "must be a valid IANA timezone")
	}
	return nil
}

// ListAuthorsRequest - query parameters for GET /authors.
// Page is 1-based; Size is bounded to keep single responses small.
type ListAuthorsRequest struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (r ListAuthorsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Required, validation.Min(1)),
		validation.Field(&r.Size, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// AuthorResponse - author representation returned to clients
type AuthorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Version   int    `json:"version"`
}

// ToResponse converts Author to AuthorResponse.
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate.Format(DateLayout),
		Version:   a.Version,
	}
}

// CreatedResponse - body returned after a successful create
type CreatedResponse struct {
	ID int64 `json:"id"`
}
