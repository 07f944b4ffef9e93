package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService stores submitted documents in canonical form.
type DocumentService struct {
	docStore   driven.DocumentStore
	normaliser driven.Normaliser
	exporters  map[string]driven.Exporter
	now        func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	docStore driven.DocumentStore,
	normaliser driven.Normaliser,
	exporters ...driven.Exporter,
) *DocumentService {
	registry := make(map[string]driven.Exporter, len(exporters))
	for _, e := range exporters {
		registry[e.Format()] = e
	}
	return &DocumentService{
		docStore:   docStore,
		normaliser: normaliser,
		exporters:  registry,
		now:        time.Now,
	}
}

// Revision fingerprints content.
func Revision(content string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(content))
}

// Save normalises content and stores it under name.
func (s *DocumentService) Save(ctx context.Context, name, content string) (*domain.StoredDocument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document name is required", domain.ErrInvalidInput)
	}

	content = s.normaliser.Normalise(content)
	revision := Revision(content)
	now := s.now().UTC()

	doc, err := s.docStore.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc = &domain.StoredDocument{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
		}
	case err != nil:
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	case doc.Revision == revision:
		return doc, nil
	}

	doc.Content = content
	doc.Revision = revision
	doc.UpdatedAt = now
	if err := s.docStore.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save %s: %w", name, err)
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.StoredDocument, error) {
	return s.docStore.Get(ctx, id)
}

// Resolve retrieves a document by ID, then by name.
func (s *DocumentService) Resolve(ctx context.Context, ref string) (*domain.StoredDocument, error) {
	doc, err := s.docStore.Get(ctx, ref)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.docStore.GetByName(ctx, ref)
}

// List returns all documents ordered by name.
func (s *DocumentService) List(ctx context.Context) ([]domain.StoredDocument, error) {
	return s.docStore.List(ctx)
}

// Delete removes a document by ID.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if _, err := s.docStore.Get(ctx, id); err != nil {
		return err
	}
	return s.docStore.Delete(ctx, id)
}

// Export renders a document in the given format.
func (s *DocumentService) Export(ctx context.Context, id, format string) ([]byte, error) {
	exporter, ok := s.exporters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := exporter.Export(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("export %s as %s: %w", doc.Name, format, err)
	}
	return out, nil
}

// Formats returns the supported export formats.
func (s *DocumentService) Formats() []string {
	formats := make([]string, 0, len(s.exporters))
	for f := range s.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
