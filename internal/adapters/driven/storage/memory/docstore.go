package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.StoredDocument
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.StoredDocument),
	}
}

// Save stores or updates a document.
func (s *DocumentStore) Save(_ context.Context, doc *domain.StoredDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.documents {
		if id != doc.ID && existing.Name == doc.Name {
			return domain.ErrInvalidInput
		}
	}
	s.documents[doc.ID] = *doc
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetByName retrieves a document by name.
func (s *DocumentStore) GetByName(_ context.Context, name string) (*domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.documents {
		if doc.Name == name {
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all documents ordered by name.
func (s *DocumentStore) List(_ context.Context) ([]domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.StoredDocument, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}
