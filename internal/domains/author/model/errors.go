package model

import "errors"

var (
	// ErrAuthorNotFound - the requested author id does not exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrVersionConflict - the conditional update matched no row because the
	// supplied version is stale (or the row vanished concurrently)
	ErrVersionConflict = errors.New("author was modified by another request")

	// ErrInvalidName - name is blank after trimming
	ErrInvalidName = errors.New("author name must not be blank")

	// ErrBirthDateInFuture - birth date is after the current date in the
	// client's timezone
	ErrBirthDateInFuture = errors.New("birth date must not be in the future")

	// ErrNoInsertID - the insert reported success but returned no generated id
	ErrNoInsertID = errors.New("no id returned for created author")
)
