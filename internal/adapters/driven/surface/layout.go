package surface

import (
	stdhtml "html"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// textUnit is one visible character of the document: a single rune or a
// character reference, located by its byte range in the markup.
type textUnit struct {
	start, end int
	text       string
	node       int
}

// element is a tag pair located by byte ranges. closeStart and closeEnd
// are -1 for elements that are never closed.
type element struct {
	name       string
	attrs      map[string]string
	openStart  int
	openEnd    int
	closeStart int
	closeEnd   int
	depth      int
}

// closed reports whether the element has an explicit or implied end.
func (e element) closed() bool {
	return e.closeStart >= 0
}

// contains reports whether the unit lies inside the element's content.
func (e element) contains(u textUnit) bool {
	return e.closed() && u.start >= e.openEnd && u.end <= e.closeStart
}

// layout is the scanned structure of a markup string.
type layout struct {
	markup   string
	units    []textUnit
	elements []element
}

var charRef = regexp.MustCompile(`^&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)

// voidElements never have content or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// scan tokenises markup and records text units and element ranges.
// Bytes after an unterminated trailing tag are ignored.
func scan(markup string) layout {
	l := layout{markup: markup}
	z := html.NewTokenizer(strings.NewReader(markup))
	offset := 0
	node := 0
	var stack []int

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())
		node++

		switch tt {
		case html.TextToken:
			l.units = append(l.units, splitText(markup, start, offset, node)...)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			stack = closeImplied(l.elements, stack, string(name), start)
			el := element{
				name:       string(name),
				attrs:      readAttrs(z, hasAttr),
				openStart:  start,
				openEnd:    offset,
				closeStart: -1,
				closeEnd:   -1,
				depth:      len(stack),
			}
			if tt == html.SelfClosingTagToken || voidElements[el.name] {
				el.closeStart, el.closeEnd = offset, offset
				l.elements = append(l.elements, el)
				continue
			}
			l.elements = append(l.elements, el)
			stack = append(stack, len(l.elements)-1)

		case html.EndTagToken:
			name, _ := z.TagName()
			for i := len(stack) - 1; i >= 0; i-- {
				if l.elements[stack[i]].name != string(name) {
					continue
				}
				l.elements[stack[i]].closeStart = start
				l.elements[stack[i]].closeEnd = offset
				stack = stack[:i]
				break
			}
		}
	}
	return l
}

// closeImplied ends an open <li> when a sibling item starts, and an open
// <p> when another block starts inside it.
func closeImplied(elements []element, stack []int, name string, at int) []int {
	for i := len(stack) - 1; i >= 0; i-- {
		open := elements[stack[i]].name
		switch {
		case name == "li" && open == "li", blockElements[name] && open == "p":
			elements[stack[i]].closeStart, elements[stack[i]].closeEnd = at, at
			return stack[:i]
		case open == "ul" || open == "ol" || i < len(stack)-1:
			return stack
		}
	}
	return stack
}

func readAttrs(z *html.Tokenizer, more bool) map[string]string {
	if !more {
		return nil
	}
	attrs := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		attrs[string(key)] = string(val)
	}
	return attrs
}

// splitText divides markup[start:end] into text units.
func splitText(markup string, start, end, node int) []textUnit {
	var units []textUnit
	for i := start; i < end; {
		if markup[i] == '&' {
			if ref := charRef.FindString(markup[i:end]); ref != "" {
				units = append(units, textUnit{start: i, end: i + len(ref), text: stdhtml.UnescapeString(ref), node: node})
				i += len(ref)
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(markup[i:end])
		units = append(units, textUnit{start: i, end: i + size, text: markup[i : i+size], node: node})
		i += size
	}
	return units
}

// text returns the visible text of the document.
func (l layout) text() string {
	var b strings.Builder
	for _, u := range l.units {
		b.WriteString(u.text)
	}
	return b.String()
}

// runs groups the units in [from, to) into contiguous runs that share a
// text node. Each run is returned as a byte range.
func (l layout) runs(from, to int) [][2]int {
	var runs [][2]int
	for i := from; i < to && i < len(l.units); i++ {
		u := l.units[i]
		if n := len(runs); n > 0 && l.units[i-1].node == u.node {
			runs[n-1][1] = u.end
			continue
		}
		runs = append(runs, [2]int{u.start, u.end})
	}
	return runs
}

// caret returns the byte offset of the insertion point before unit i.
func (l layout) caret(i int) int {
	switch {
	case i < len(l.units):
		return l.units[i].start
	case len(l.units) > 0:
		return l.units[len(l.units)-1].end
	default:
		return len(l.markup)
	}
}

// edit is a replacement of markup[start:end].
type edit struct {
	start, end int
	text       string
}

// apply performs edits, which must not overlap, and returns the result.
func apply(markup string, edits []edit) string {
	sortEdits(edits)
	var b strings.Builder
	b.Grow(len(markup) + 64)
	last := 0
	for _, e := range edits {
		b.WriteString(markup[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(markup[last:])
	return b.String()
}

// sortEdits orders edits by position; insertions at the same offset keep
// their relative order.
func sortEdits(edits []edit) {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
}
