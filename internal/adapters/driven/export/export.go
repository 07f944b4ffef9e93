package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// All returns every built-in exporter.
func All() []driven.Exporter {
	return []driven.Exporter{
		NewHTML(),
		NewMarkdown(),
		NewText(),
		NewOutline(),
	}
}

// parse loads a markup fragment into a goquery document.
func parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}

// compactLines trims every line and drops the empty ones.
func compactLines(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
