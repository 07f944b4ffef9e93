package surface

import (
	stdhtml "html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Rendered implements the interface.
var _ driven.RenderedSurface = (*Rendered)(nil)

// maxHistory bounds the undo stack.
const maxHistory = 100

// Rendered is an in-memory editable document with a text selection.
// Selection offsets count visible characters, with a character reference
// such as &amp; counting as one.
type Rendered struct {
	mu sync.Mutex

	flavor       domain.Flavor
	styleWithCSS bool

	markup string
	sel    selection

	visible   bool
	attached  bool
	destroyed bool
	focused   bool
	pending   []func()

	undo []string
	redo []string
}

// NewRendered creates a visible, attached surface for the given engine flavour.
// An invalid flavour falls back to gecko.
func NewRendered(flavor domain.Flavor) *Rendered {
	if !flavor.IsValid() {
		flavor = domain.FlavorGecko
	}
	return &Rendered{
		flavor:   flavor,
		visible:  true,
		attached: true,
	}
}

// Flavor returns the engine flavour.
func (r *Rendered) Flavor() domain.Flavor {
	return r.flavor
}

// InnerHTML returns the current markup.
func (r *Rendered) InnerHTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.markup
}

// SetInnerHTML replaces the markup, collapses the selection to the end
// and clears the undo history.
func (r *Rendered) SetInnerHTML(markup string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.attached || r.destroyed {
		return domain.ErrSurfaceDetached
	}
	r.markup = markup
	n := len(scan(markup).units)
	r.sel = selection{n, n}
	r.undo, r.redo = nil, nil
	return nil
}

// Text returns the visible text of the document.
func (r *Rendered) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return scan(r.markup).text()
}

// Select selects the characters in [start, end). Offsets are clamped to
// the document and swapped if reversed.
func (r *Rendered) Select(start, end int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sel = clampSelection(start, end, len(scan(r.markup).units))
}

// SelectText selects the first occurrence of text and reports whether it
// was found.
func (r *Rendered) SelectText(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if text == "" {
		return false
	}
	doc := scan(r.markup).text()
	i := strings.Index(doc, text)
	if i < 0 {
		return false
	}
	start := utf8.RuneCountInString(doc[:i])
	r.sel = selection{start, start + utf8.RuneCountInString(text)}
	return true
}

// Range returns the selection offsets.
func (r *Rendered) Range() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sel.start, r.sel.end
}

// Selection returns the selected text.
func (r *Rendered) Selection() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	units := scan(r.markup).units
	sel := clampSelection(r.sel.start, r.sel.end, len(units))
	var b strings.Builder
	for _, u := range units[sel.start:sel.end] {
		b.WriteString(u.text)
	}
	return b.String()
}

// ExecCommand runs a formatting command against the selection.
// Command names are matched case-insensitively.
func (r *Rendered) ExecCommand(name, _, param2 string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return domain.ErrSurfaceDetached
	}

	name = strings.ToLower(name)
	switch name {
	case "stylewithcss":
		if !r.flavor.SupportsStyleWithCSS() {
			return domain.ErrDispatchIgnored
		}
		r.styleWithCSS = strings.EqualFold(param2, "true")
		return nil
	case "undo":
		return r.step(&r.undo, &r.redo)
	case "redo":
		return r.step(&r.redo, &r.undo)
	}

	l := scan(r.markup)
	sel := clampSelection(r.sel.start, r.sel.end, len(l.units))
	st := styler{flavor: r.flavor, css: r.styleWithCSS}

	var out string
	var err error
	caret := -1
	switch name {
	case "inserttext":
		out, err = replaceSelection(l, sel, param2)
		caret = sel.start + len(scan(stdhtml.EscapeString(param2)).units)
	case "delete":
		out, caret, err = deleteBackward(l, sel)
	case "bold", "italic", "underline", "strikethrough":
		out, err = toggleInline(l, sel, inlineFormats[name], st)
	case "forecolor":
		if !domain.IsColor(param2) {
			return domain.ErrDispatchIgnored
		}
		open, close := st.color(domain.CanonicalColor(param2))
		out, err = wrapRuns(l, sel, open, close)
	case "createlink":
		if param2 == "" {
			return domain.ErrDispatchIgnored
		}
		open, close := st.link(param2)
		out, err = wrapRuns(l, sel, open, close)
	case "unlink":
		out, err = unlink(l, sel)
	case "insertimage":
		out, err = insertImage(l, sel, param2, st)
	case "insertunorderedlist":
		out, err = insertList(l, sel, "ul", st)
	case "insertorderedlist":
		out, err = insertList(l, sel, "ol", st)
	case "indent":
		out, err = indent(l, sel, st)
	case "outdent":
		out, err = outdent(l, sel)
	default:
		return domain.ErrDispatchIgnored
	}
	if err != nil {
		return err
	}

	r.record(out)
	if caret >= 0 {
		r.sel = selection{caret, caret}
	}
	return nil
}

// record replaces the markup, pushing the previous version onto the undo stack.
func (r *Rendered) record(markup string) {
	r.undo = append(r.undo, r.markup)
	if len(r.undo) > maxHistory {
		r.undo = r.undo[1:]
	}
	r.redo = nil
	r.markup = markup
}

// step moves one version from one history stack to the other.
func (r *Rendered) step(from, to *[]string) error {
	n := len(*from)
	if n == 0 {
		return domain.ErrDispatchIgnored
	}
	*to = append(*to, r.markup)
	r.markup = (*from)[n-1]
	*from = (*from)[:n-1]
	r.sel = clampSelection(r.sel.start, r.sel.end, len(scan(r.markup).units))
	return nil
}

// Focus moves input focus into the surface if it is visible.
func (r *Rendered) Focus() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focused = r.visible && !r.destroyed
}

// Focused reports whether the surface has input focus.
func (r *Rendered) Focused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focused
}

// Show makes the surface visible. It is attached on the next Settle.
func (r *Rendered) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = true
}

// Hide detaches the surface from the view.
func (r *Rendered) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = false
	r.attached = false
	r.focused = false
}

// Visible reports whether the surface is shown.
func (r *Rendered) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Attached reports whether the surface is attached to the view.
func (r *Rendered) Attached() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attached
}

// WhenAttached queues fn to run on the next Settle after which the
// surface is attached.
func (r *Rendered) WhenAttached(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return
	}
	r.pending = append(r.pending, fn)
}

// Pending returns the number of queued WhenAttached callbacks.
func (r *Rendered) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Settle completes a pending visibility change. A visible surface becomes
// attached and its queued callbacks run in registration order.
func (r *Rendered) Settle() {
	r.mu.Lock()
	if r.destroyed || !r.visible {
		r.mu.Unlock()
		return
	}
	r.attached = true
	callbacks := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Destroy tears the surface down. Queued callbacks are dropped.
func (r *Rendered) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = true
	r.attached = false
	r.visible = false
	r.focused = false
	r.pending = nil
}

// SupportsStyleWithCSS reports whether the engine understands styleWithCSS.
func (r *Rendered) SupportsStyleWithCSS() bool {
	return r.flavor.SupportsStyleWithCSS()
}

func clampSelection(start, end, n int) selection {
	if start > end {
		start, end = end, start
	}
	start = max(0, min(start, n))
	end = max(0, min(end, n))
	return selection{start, end}
}
