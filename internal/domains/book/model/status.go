package model

import "fmt"

// PublicationStatus is the two-state lifecycle of a book. The database stores
// the short codes; JSON carries the symbolic names.
type PublicationStatus string

const (
	StatusUnpublished PublicationStatus = "UNPUBLISHED"
	StatusPublished   PublicationStatus = "PUBLISHED"

	statusUnpublishedCode = "00"
	statusPublishedCode   = "01"
)

// Code returns the status code persisted in the publication_status column.
func (s PublicationStatus) Code() string {
	if s == StatusPublished {
		return statusPublishedCode
	}
	return statusUnpublishedCode
}

// CanTransitionTo reports whether the change from s to next is legal.
// Publication is a one-way gate: once PUBLISHED a book can never go back to
// UNPUBLISHED. Staying on the same status is always allowed. This is the
// single source of truth for the transition table.
func (s PublicationStatus) CanTransitionTo(next PublicationStatus) bool {
	switch s {
	case StatusUnpublished:
		return next == StatusUnpublished || next == StatusPublished
	case StatusPublished:
		return next == StatusPublished
	default:
		return false
	}
}

// StatusFromCode maps a stored status code back to its PublicationStatus.
func StatusFromCode(code string) (PublicationStatus, error) {
	switch code {
	case statusUnpublishedCode:
		return StatusUnpublished, nil
	case statusPublishedCode:
		return StatusPublished, nil
	default:
		return "", fmt.Errorf("unknown publication status code %q", code)
	}
}

// ParsePublicationStatus parses the symbolic name used on the wire.
func ParsePublicationStatus(name string) (PublicationStatus, error) {
	switch PublicationStatus(name) {
	case StatusUnpublished, StatusPublished:
		return PublicationStatus(name), nil
	default:
		return "", fmt.Errorf("unknown publication status %q", name)
	}
}
