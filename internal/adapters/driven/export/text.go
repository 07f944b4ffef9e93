package export

import (
	"html"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Text implements the interface.
var _ driven.Exporter = (*Text)(nil)

// blockSelector matches elements that end a line of text.
const blockSelector = "p, div, li, blockquote, h1, h2, h3, h4, h5, h6, pre, tr"

// Text extracts the readable text of markup, one block per line.
type Text struct{}

// NewText creates a plain text exporter.
func NewText() *Text {
	return &Text{}
}

// Format returns "text".
func (e *Text) Format() string { return "text" }

// Extension returns ".txt".
func (e *Text) Extension() string { return ".txt" }

// Export extracts text. List items are prefixed with "- " and images
// are replaced with their alt text.
func (e *Text) Export(markup string) ([]byte, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt, _ := s.Attr("alt")
		s.ReplaceWithHtml(html.EscapeString(alt))
	})
	doc.Find("li").PrependHtml("- ")
	doc.Find(blockSelector).AppendHtml("\n")

	return []byte(compactLines(doc.Text())), nil
}
