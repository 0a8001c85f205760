package model

import (
	"github.com/shopspring/decimal"
)

const (
	// MaxTitleLength is the column limit for book titles.
	MaxTitleLength = 255

	// PriceMaxIntegerDigits / PriceMaxFractionDigits bound the numeric(12,2)
	// price column.
	PriceMaxIntegerDigits  = 10
	PriceMaxFractionDigits = 2
)

// NewBook is a book that has not been persisted yet: no ID, no version.
// AuthorIDs must already be deduplicated and verified by the coordinator;
// the store persists them as-is.
type NewBook struct {
	Title             string
	Price             decimal.Decimal
	CurrencyCode      string
	PublicationStatus PublicationStatus
	AuthorIDs         []int64
}

// Book is a persisted book aggregate: the row plus its author associations.
// After any successful write the association rows match AuthorIDs exactly.
type Book struct {
	ID                int64
	Title             string
	Price             decimal.Decimal
	CurrencyCode      string
	PublicationStatus PublicationStatus
	AuthorIDs         []int64
	Version           int
}

// CanUpdatePublicationStatus reports whether the book may move to next.
func (b *Book) CanUpdatePublicationStatus(next PublicationStatus) bool {
	return b.PublicationStatus.CanTransitionTo(next)
}
