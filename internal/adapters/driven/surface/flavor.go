package surface

import (
	stdhtml "html"
	"strings"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// inlineFormat describes a toggled character format.
type inlineFormat struct {
	tag     string
	trident string
	css     string
	names   []string
}

var inlineFormats = map[string]inlineFormat{
	"bold":          {tag: "b", trident: "STRONG", css: "font-weight: bold;", names: []string{"b", "strong"}},
	"italic":        {tag: "i", trident: "EM", css: "font-style: italic;", names: []string{"i", "em"}},
	"underline":     {tag: "u", trident: "U", css: "text-decoration: underline;", names: []string{"u"}},
	"strikethrough": {tag: "strike", trident: "STRIKE", css: "text-decoration: line-through;", names: []string{"strike", "s", "del"}},
}

// matches reports whether el already applies the format.
func (f inlineFormat) matches(el element) bool {
	for _, n := range f.names {
		if el.name == n {
			return true
		}
	}
	return el.name == "span" && strings.Contains(el.attrs["style"], f.css)
}

// styler produces the markup an engine flavour emits for each command.
type styler struct {
	flavor domain.Flavor
	css    bool
}

func (s styler) span(css string) (string, string) {
	if s.flavor == domain.FlavorWebKit {
		return `<span class="Apple-style-span" style="` + css + `">`, "</span>"
	}
	return `<span style="` + css + `">`, "</span>"
}

func (s styler) inline(f inlineFormat) (string, string) {
	switch {
	case s.flavor == domain.FlavorTrident:
		return "<" + f.trident + ">", "</" + f.trident + ">"
	case s.css:
		return s.span(f.css)
	default:
		return "<" + f.tag + ">", "</" + f.tag + ">"
	}
}

func (s styler) color(value string) (string, string) {
	switch {
	case s.flavor == domain.FlavorTrident:
		return "<FONT color=" + value + ">", "</FONT>"
	case s.css:
		return s.span("color: " + value + ";")
	default:
		return `<font color="` + value + `">`, "</font>"
	}
}

func (s styler) link(url string) (string, string) {
	if s.flavor == domain.FlavorTrident {
		return `<A href="` + stdhtml.EscapeString(url) + `">`, "</A>"
	}
	return `<a href="` + stdhtml.EscapeString(url) + `">`, "</a>"
}

func (s styler) image(url string) string {
	if s.flavor == domain.FlavorTrident {
		return `<IMG src="` + stdhtml.EscapeString(url) + `">`
	}
	return `<img src="` + stdhtml.EscapeString(url) + `">`
}

func (s styler) list(name string) (string, string) {
	if s.flavor == domain.FlavorTrident {
		name = strings.ToUpper(name)
	}
	return "<" + name + ">", "</" + name + ">"
}

// item wraps list item content. Gecko leaves a trailing break in every item.
func (s styler) item(inner string) string {
	switch s.flavor {
	case domain.FlavorTrident:
		return "<LI>" + inner + "</LI>"
	case domain.FlavorGecko:
		return "<li>" + inner + "<br></li>"
	default:
		return "<li>" + inner + "</li>"
	}
}

func (s styler) blockquote() (string, string) {
	switch s.flavor {
	case domain.FlavorWebKit:
		return `<blockquote class="webkit-indent-blockquote" style="margin: 0 0 0 40px; border: none; padding: 0px;">`, "</blockquote>"
	case domain.FlavorTrident:
		return `<BLOCKQUOTE dir=ltr style="MARGIN-RIGHT: 0px">`, "</BLOCKQUOTE>"
	default:
		return "<blockquote>", "</blockquote>"
	}
}
