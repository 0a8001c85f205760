package model

import (
	"time"
)

// MaxNameLength is the column limit for author names.
const MaxNameLength = 255

// NewAuthor is an author that has not been persisted yet. It carries no ID;
// the repository assigns one (and version 1) on insert.
type NewAuthor struct {
	Name      string
	BirthDate time.Time
}

// Author is a persisted author row. Version is the optimistic concurrency
// token: it starts at 1 and every successful update increments it by one.
type Author struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	Version   int       `json:"version" db:"version"`
}
