package export

import "github.com/custodia-labs/editable/internal/core/ports/driven"

// Ensure HTML implements the interface.
var _ driven.Exporter = (*HTML)(nil)

// HTML writes canonical markup unchanged.
type HTML struct{}

// NewHTML creates an HTML exporter.
func NewHTML() *HTML {
	return &HTML{}
}

// Format returns "html".
func (e *HTML) Format() string { return "html" }

// Extension returns ".html".
func (e *HTML) Extension() string { return ".html" }

// Export returns markup as bytes.
func (e *HTML) Export(markup string) ([]byte, error) {
	return []byte(markup), nil
}
