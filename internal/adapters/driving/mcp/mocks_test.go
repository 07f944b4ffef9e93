package mcp

import (
	"context"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// mockNormaliseService is a mock implementation of driving.NormaliseService.
type mockNormaliseService struct {
	output string
	steps  []domain.RuleStep
}

func (m *mockNormaliseService) Normalise(_ string) string {
	return m.output
}

func (m *mockNormaliseService) Check(markup string) (string, bool) {
	return m.output, m.output == markup
}

func (m *mockNormaliseService) Explain(_ string) []domain.RuleStep {
	return m.steps
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.StoredDocument
	document  *domain.StoredDocument
	exported  []byte
	err       error

	savedName    string
	savedContent string
	exportFormat string
}

func (m *mockDocumentService) Save(_ context.Context, name, content string) (*domain.StoredDocument, error) {
	m.savedName, m.savedContent = name, content
	return m.document, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.StoredDocument, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Resolve(_ context.Context, _ string) (*domain.StoredDocument, error) {
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.StoredDocument, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Export(_ context.Context, _, format string) ([]byte, error) {
	m.exportFormat = format
	return m.exported, m.err
}

func (m *mockDocumentService) Formats() []string {
	return []string{"html", "markdown"}
}
