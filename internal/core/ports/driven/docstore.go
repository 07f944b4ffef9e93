package driven

import (
	"context"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// DocumentStore persists submitted documents.
// Backed by SQLite in production and by memory in tests.
type DocumentStore interface {
	// Save stores or updates a document, keyed by ID.
	Save(ctx context.Context, doc *domain.StoredDocument) error

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.StoredDocument, error)

	// GetByName retrieves a document by its unique name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.StoredDocument, error)

	// List returns all documents ordered by name.
	List(ctx context.Context) ([]domain.StoredDocument, error)

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error
}
