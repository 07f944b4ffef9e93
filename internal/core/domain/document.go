package domain

import "time"

// StoredDocument is a submitted document in canonical markup.
type StoredDocument struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the human-readable, unique name chosen by the user.
	Name string

	// Content is the normalised HTML.
	Content string

	// Revision fingerprints Content; equal revisions mean equal content.
	Revision string

	// CreatedAt is when the document was first submitted.
	CreatedAt time.Time

	// UpdatedAt is when the document content last changed.
	UpdatedAt time.Time
}
