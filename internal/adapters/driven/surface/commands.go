package surface

import (
	stdhtml "html"
	"strings"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// selection is a range of text unit indices.
type selection struct {
	start, end int
}

func (s selection) collapsed() bool {
	return s.start >= s.end
}

// blockElements start a new line when rendered.
var blockElements = map[string]bool{
	"p": true, "div": true, "pre": true, "blockquote": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
}

// targets returns the units a command applies to: the selected units, or
// the unit at the caret when the selection is collapsed.
func (l layout) targets(sel selection) []textUnit {
	if !sel.collapsed() {
		return l.units[sel.start:sel.end]
	}
	switch {
	case sel.start < len(l.units):
		return l.units[sel.start : sel.start+1]
	case len(l.units) > 0:
		return l.units[len(l.units)-1:]
	default:
		return nil
	}
}

// wrapRuns surrounds every selected run of text with open and close.
func wrapRuns(l layout, sel selection, open, close string) (string, error) {
	if sel.collapsed() {
		return "", domain.ErrDispatchIgnored
	}
	runs := l.runs(sel.start, sel.end)
	edits := make([]edit, 0, 2*len(runs))
	for _, r := range runs {
		edits = append(edits, edit{r[0], r[0], open}, edit{r[1], r[1], close})
	}
	return apply(l.markup, edits), nil
}

// unwrap removes the tags of the given elements, keeping their content.
func unwrap(l layout, idx []int) string {
	edits := make([]edit, 0, 2*len(idx))
	for _, i := range idx {
		el := l.elements[i]
		edits = append(edits, edit{el.openStart, el.openEnd, ""})
		if el.closed() {
			edits = append(edits, edit{el.closeStart, el.closeEnd, ""})
		}
	}
	return apply(l.markup, edits)
}

// enclosing returns the elements accepted by match that contain any of units.
// all is true when every unit is inside at least one of them.
func enclosing(l layout, units []textUnit, match func(element) bool) (idx []int, all bool) {
	seen := make(map[int]bool)
	all = len(units) > 0
	for _, u := range units {
		found := false
		for i, el := range l.elements {
			if match(el) && el.contains(u) {
				found = true
				if !seen[i] {
					seen[i] = true
					idx = append(idx, i)
				}
			}
		}
		if !found {
			all = false
		}
	}
	return idx, all
}

// toggleInline removes the format when the whole selection already has
// it, and applies it otherwise.
func toggleInline(l layout, sel selection, f inlineFormat, st styler) (string, error) {
	if sel.collapsed() {
		return "", domain.ErrDispatchIgnored
	}
	idx, all := enclosing(l, l.units[sel.start:sel.end], f.matches)
	if all {
		return unwrap(l, idx), nil
	}
	open, close := st.inline(f)
	return wrapRuns(l, sel, open, close)
}

func unlink(l layout, sel selection) (string, error) {
	idx, _ := enclosing(l, l.targets(sel), func(el element) bool { return el.name == "a" })
	if len(idx) == 0 {
		return "", domain.ErrDispatchIgnored
	}
	return unwrap(l, idx), nil
}

// replaceSelection deletes the selected text and inserts text in its place.
func replaceSelection(l layout, sel selection, text string) (string, error) {
	if sel.collapsed() && text == "" {
		return "", domain.ErrDispatchIgnored
	}
	at := l.caret(sel.start)
	edits := []edit{{at, at, stdhtml.EscapeString(text)}}
	if !sel.collapsed() {
		for _, r := range l.runs(sel.start, sel.end) {
			edits = append(edits, edit{r[0], r[1], ""})
		}
	}
	return apply(l.markup, edits), nil
}

// deleteBackward removes the selection, or the character before a
// collapsed caret, and returns the new caret position.
func deleteBackward(l layout, sel selection) (string, int, error) {
	if !sel.collapsed() {
		out, err := replaceSelection(l, sel, "")
		return out, sel.start, err
	}
	if sel.start == 0 {
		return "", 0, domain.ErrDispatchIgnored
	}
	u := l.units[sel.start-1]
	return apply(l.markup, []edit{{u.start, u.end, ""}}), sel.start - 1, nil
}

func insertImage(l layout, sel selection, url string, st styler) (string, error) {
	if url == "" {
		return "", domain.ErrDispatchIgnored
	}
	at := l.caret(sel.end)
	return apply(l.markup, []edit{{at, at, st.image(url)}}), nil
}

// segment is a top-level node: an element at depth 0 (el >= 0) or the
// text between two of them (el == -1).
type segment struct {
	start, end int
	el         int
}

func (l layout) segments() []segment {
	var segs []segment
	pos := 0
	for i, el := range l.elements {
		if el.depth != 0 {
			continue
		}
		if el.openStart > pos {
			segs = append(segs, segment{pos, el.openStart, -1})
		}
		end := el.closeEnd
		if !el.closed() {
			end = len(l.markup)
		}
		segs = append(segs, segment{el.openStart, end, i})
		pos = end
	}
	if pos < len(l.markup) {
		segs = append(segs, segment{pos, len(l.markup), -1})
	}
	return segs
}

// selectedSegments returns the indices of the first and last top-level
// segments touched by the selection.
func (l layout) selectedSegments(segs []segment, sel selection) (int, int, bool) {
	first, last := -1, -1
	for _, u := range l.targets(sel) {
		for i, s := range segs {
			if u.start >= s.start && u.end <= s.end {
				if first < 0 || i < first {
					first = i
				}
				if i > last {
					last = i
				}
				break
			}
		}
	}
	return first, last, first >= 0
}

// inner returns the content of element i.
func (l layout) inner(i int) string {
	el := l.elements[i]
	if !el.closed() {
		return l.markup[el.openEnd:]
	}
	return l.markup[el.openEnd:el.closeStart]
}

// listItems returns the content of every direct <li> child of list i.
// An unclosed item ends where the next one starts.
func (l layout) listItems(i int) []string {
	list := l.elements[i]
	limit := len(l.markup)
	if list.closed() {
		limit = list.closeStart
	}
	var starts []int
	for j, el := range l.elements {
		if el.name == "li" && el.depth == list.depth+1 && el.openStart >= list.openEnd && el.openEnd <= limit {
			starts = append(starts, j)
		}
	}
	items := make([]string, 0, len(starts))
	for k, j := range starts {
		el := l.elements[j]
		end := limit
		switch {
		case el.closed():
			end = el.closeStart
		case k+1 < len(starts):
			end = l.elements[starts[k+1]].openStart
		}
		items = append(items, l.markup[el.openEnd:end])
	}
	return items
}

func insertList(l layout, sel selection, name string, st styler) (string, error) {
	segs := l.segments()
	first, last, ok := l.selectedSegments(segs, sel)
	if !ok {
		return "", domain.ErrDispatchIgnored
	}

	if first == last && segs[first].el >= 0 {
		el := l.elements[segs[first].el]
		if el.name == "ul" || el.name == "ol" {
			if el.name == name {
				var b strings.Builder
				for _, item := range l.listItems(segs[first].el) {
					b.WriteString("<p>" + item + "</p>")
				}
				return apply(l.markup, []edit{{segs[first].start, segs[first].end, b.String()}}), nil
			}
			open, close := st.list(name)
			edits := []edit{{el.openStart, el.openEnd, open}}
			if el.closed() {
				edits = append(edits, edit{el.closeStart, el.closeEnd, close})
			}
			return apply(l.markup, edits), nil
		}
	}

	var items []string
	var pending strings.Builder
	flush := func() {
		if strings.TrimSpace(pending.String()) != "" {
			items = append(items, pending.String())
		}
		pending.Reset()
	}
	for _, s := range segs[first : last+1] {
		if s.el < 0 {
			pending.WriteString(l.markup[s.start:s.end])
			continue
		}
		el := l.elements[s.el]
		switch {
		case el.name == "br":
			flush()
		case el.name == "ul" || el.name == "ol":
			flush()
			items = append(items, l.listItems(s.el)...)
		case blockElements[el.name]:
			flush()
			items = append(items, l.inner(s.el))
		default:
			pending.WriteString(l.markup[s.start:s.end])
		}
	}
	flush()
	if len(items) == 0 {
		return "", domain.ErrDispatchIgnored
	}

	open, close := st.list(name)
	var b strings.Builder
	b.WriteString(open)
	for _, item := range items {
		b.WriteString(st.item(item))
	}
	b.WriteString(close)
	return apply(l.markup, []edit{{segs[first].start, segs[last].end, b.String()}}), nil
}

func indent(l layout, sel selection, st styler) (string, error) {
	segs := l.segments()
	first, last, ok := l.selectedSegments(segs, sel)
	if !ok {
		return "", domain.ErrDispatchIgnored
	}
	open, close := st.blockquote()
	return apply(l.markup, []edit{
		{segs[first].start, segs[first].start, open},
		{segs[last].end, segs[last].end, close},
	}), nil
}

// outdent unwraps the innermost blockquote around the whole selection.
func outdent(l layout, sel selection) (string, error) {
	units := l.targets(sel)
	best := -1
	for i, el := range l.elements {
		if el.name != "blockquote" || !el.closed() {
			continue
		}
		inside := len(units) > 0
		for _, u := range units {
			if !el.contains(u) {
				inside = false
				break
			}
		}
		if inside && (best < 0 || el.depth > l.elements[best].depth) {
			best = i
		}
	}
	if best < 0 {
		return "", domain.ErrDispatchIgnored
	}
	return unwrap(l, []int{best}), nil
}
