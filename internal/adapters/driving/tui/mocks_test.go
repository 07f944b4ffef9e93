package tui

import (
	"context"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	SaveFunc func(ctx context.Context, name, content string) (*domain.StoredDocument, error)
}

func (m *MockDocumentService) Save(ctx context.Context, name, content string) (*domain.StoredDocument, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, content)
	}
	return &domain.StoredDocument{Name: name, Content: content}, nil
}

func (m *MockDocumentService) Get(_ context.Context, _ string) (*domain.StoredDocument, error) {
	return nil, domain.ErrNotFound
}

func (m *MockDocumentService) Resolve(_ context.Context, _ string) (*domain.StoredDocument, error) {
	return nil, domain.ErrNotFound
}

func (m *MockDocumentService) List(_ context.Context) ([]domain.StoredDocument, error) {
	return nil, nil
}

func (m *MockDocumentService) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *MockDocumentService) Export(_ context.Context, _, _ string) ([]byte, error) {
	return nil, domain.ErrUnsupportedFormat
}

func (m *MockDocumentService) Formats() []string {
	return nil
}
