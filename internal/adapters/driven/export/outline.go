package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Outline implements the interface.
var _ driven.Exporter = (*Outline)(nil)

// Outline lists the headings of a document as a nested bullet list.
type Outline struct{}

// NewOutline creates an outline exporter.
func NewOutline() *Outline {
	return &Outline{}
}

// Format returns "outline".
func (e *Outline) Format() string { return "outline" }

// Extension returns ".txt".
func (e *Outline) Extension() string { return ".txt" }

// Export writes one line per heading, indented by heading level.
// Documents without headings produce empty output.
func (e *Outline) Export(markup string) ([]byte, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		title := strings.Join(strings.Fields(s.Text()), " ")
		if title == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		b.WriteString(strings.Repeat("  ", level-1))
		b.WriteString("- ")
		b.WriteString(title)
		b.WriteByte('\n')
	})
	return []byte(b.String()), nil
}
