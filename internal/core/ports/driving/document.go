package driving

import (
	"context"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// DocumentService manages submitted documents.
type DocumentService interface {
	// Save normalises content and stores it under name. Saving an existing
	// name updates that document; unchanged content keeps its revision.
	Save(ctx context.Context, name, content string) (*domain.StoredDocument, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.StoredDocument, error)

	// Resolve retrieves a document by ID or, failing that, by name.
	Resolve(ctx context.Context, ref string) (*domain.StoredDocument, error)

	// List returns all documents ordered by name.
	List(ctx context.Context) ([]domain.StoredDocument, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// Export renders a document in the given format.
	// Returns domain.ErrUnsupportedFormat for unknown formats.
	Export(ctx context.Context, id, format string) ([]byte, error)

	// Formats returns the supported export formats.
	Formats() []string
}
