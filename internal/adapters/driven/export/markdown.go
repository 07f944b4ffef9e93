package export

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Markdown implements the interface.
var _ driven.Exporter = (*Markdown)(nil)

// Markdown converts markup to CommonMark.
type Markdown struct{}

// NewMarkdown creates a Markdown exporter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Format returns "markdown".
func (e *Markdown) Format() string { return "markdown" }

// Extension returns ".md".
func (e *Markdown) Extension() string { return ".md" }

// Export converts markup into Markdown.
func (e *Markdown) Export(markup string) ([]byte, error) {
	md, err := htmltomarkdown.ConvertString(markup)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(md), nil
}
