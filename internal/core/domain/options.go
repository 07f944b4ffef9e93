package domain

import (
	"fmt"
	"strings"
)

// DefaultButtons is the toolbar layout used when none is configured.
const DefaultButtons = "bold,italic,underline,strikethrough,separator," +
	"insertunorderedlist,insertorderedlist,indent,outdent,separator," +
	"undo,redo,separator,createlink,unlink,separator,urlimage,separator,toggleview"

// EditorOptions configures an editor instance.
type EditorOptions struct {
	// Toolbar shows or hides the command bar.
	Toolbar bool

	// Buttons is the ordered list of command identifiers, including "separator".
	Buttons []string

	// Text overrides display labels by command identifier.
	Text map[string]string

	// Flavor selects the rendering engine of the rendered surface.
	Flavor Flavor
}

// DefaultEditorOptions returns the options of a freshly installed editor.
func DefaultEditorOptions() EditorOptions {
	return EditorOptions{
		Toolbar: true,
		Buttons: ParseButtons(DefaultButtons),
		Text:    map[string]string{},
		Flavor:  FlavorGecko,
	}
}

// ParseButtons splits a comma-separated button list. Whitespace, line
// continuations and empty entries are dropped.
func ParseButtons(list string) []string {
	parts := strings.Split(list, ",")
	buttons := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.Trim(strings.TrimSpace(p), "\\"))
		if p != "" {
			buttons = append(buttons, p)
		}
	}
	return buttons
}

// Label resolves the display label for id: an explicit Text override,
// then the command table label, then the identifier itself.
func (o EditorOptions) Label(table CommandTable, id string) string {
	if label, ok := o.Text[id]; ok && label != "" {
		return label
	}
	if c, ok := table[id]; ok && c.Label != "" {
		return c.Label
	}
	return id
}

// Validate checks the options for unusable values.
func (o EditorOptions) Validate() error {
	if o.Flavor != "" && !o.Flavor.IsValid() {
		return fmt.Errorf("%w: unknown flavor %q", ErrInvalidInput, o.Flavor)
	}
	for i, b := range o.Buttons {
		if strings.TrimSpace(b) == "" {
			return fmt.Errorf("%w: empty button at position %d", ErrInvalidInput, i)
		}
		if strings.ContainsAny(b, " \t,") {
			return fmt.Errorf("%w: malformed button %q", ErrInvalidInput, b)
		}
	}
	return nil
}

// Button is the UI state of one toolbar entry.
type Button struct {
	ID        string
	Label     string
	Kind      CommandKind
	Separator bool
	Enabled   bool
}

// BuildToolbar resolves the configured buttons against table.
// An empty slice is returned when the toolbar is hidden.
func BuildToolbar(opts EditorOptions, table CommandTable) []Button {
	if !opts.Toolbar {
		return []Button{}
	}
	buttons := make([]Button, 0, len(opts.Buttons))
	for _, id := range opts.Buttons {
		c, _ := table.Lookup(id)
		buttons = append(buttons, Button{
			ID:        id,
			Label:     opts.Label(table, id),
			Kind:      c.Kind,
			Separator: c.Kind == KindSeparator,
			Enabled:   c.Kind != KindSeparator,
		})
	}
	return buttons
}
