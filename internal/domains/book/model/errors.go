package model

import (
	"errors"
	"fmt"
)

var (
	// ErrBookNotFound - the requested book id does not exist
	ErrBookNotFound = errors.New("book not found")

	// ErrVersionConflict - the conditional update matched no row because the
	// supplied version is stale (or the row vanished concurrently)
	ErrVersionConflict = errors.New("book was modified by another request")

	// ErrInvalidTitle - title is blank after trimming
	ErrInvalidTitle = errors.New("book title must not be blank")

	// ErrNoInsertID - the insert reported success but returned no generated id
	ErrNoInsertID = errors.New("no id returned for created book")
)

// AuthorsNotFoundError reports the subset of requested author ids that do
// not exist. Only the missing ids are listed, not the whole request.
type AuthorsNotFoundError struct {
	MissingIDs []int64
}

func (e *AuthorsNotFoundError) Error() string {
	return fmt.Sprintf("authors not found: %v", e.MissingIDs)
}

// InvalidStatusTransitionError reports an illegal publication status change.
type InvalidStatusTransitionError struct {
	From PublicationStatus
	To   PublicationStatus
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("publication status cannot be changed from %s to %s", e.From, e.To)
}
