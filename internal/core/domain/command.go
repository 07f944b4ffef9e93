package domain

import (
	"regexp"
	"strings"
)

// CommandKind tags how a command is turned into a formatting dispatch.
type CommandKind int

const (
	// KindFormat is passed straight to the rendered surface with empty parameters.
	KindFormat CommandKind = iota

	// KindInput needs a value from the user before it is dispatched.
	KindInput

	// KindStructural changes the editor itself and has no formatting side effect.
	KindStructural

	// KindSeparator only separates toolbar groups.
	KindSeparator
)

// String returns the string representation of the kind.
func (k CommandKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindInput:
		return "input"
	case KindStructural:
		return "structural"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Well-known command identifiers.
const (
	CommandSeparator    = "separator"
	CommandToggleView   = "toggleview"
	CommandCreateLink   = "createlink"
	CommandURLImage     = "urlimage"
	CommandForeColor    = "forecolor"
	CommandInsertImage  = "insertImage"
	CommandStyleWithCSS = "styleWithCSS"
)

// Command describes a single toolbar entry and how it dispatches.
type Command struct {
	// ID is the identifier used in button lists and dispatch.
	ID string

	// Label is the default display label.
	Label string

	// Kind selects the dispatch behaviour.
	Kind CommandKind

	// Exec is the formatting command sent to the surface.
	// Defaults to ID when empty.
	Exec string

	// RequiresSelection aborts the action when nothing is selected.
	RequiresSelection bool

	// SelectionNotice is shown when RequiresSelection fails.
	SelectionNotice string

	// Prompt is the question asked for KindInput commands.
	Prompt string

	// PromptDefault pre-fills the prompt.
	PromptDefault string

	// Validate checks a trimmed prompt answer. Nil accepts anything non-empty.
	Validate func(value string) bool

	// InvalidNotice is shown when Validate rejects an answer.
	InvalidNotice string

	// EmptyNotice is shown when the answer is blank. Falls back to InvalidNotice.
	EmptyNotice string

	// Canonical rewrites an accepted answer before dispatch. Nil keeps it as is.
	Canonical func(value string) string
}

// BlankNotice returns the notice shown for a blank answer.
func (c Command) BlankNotice() string {
	if c.EmptyNotice != "" {
		return c.EmptyNotice
	}
	return c.InvalidNotice
}

// Dispatch returns the surface command name for this command.
func (c Command) Dispatch() string {
	if c.Exec != "" {
		return c.Exec
	}
	return c.ID
}

// CommandTable maps command identifiers to their descriptors.
type CommandTable map[string]Command

// Lookup returns the command for id. Unknown identifiers resolve to a
// pass-through format command so any surface command can be bound.
func (t CommandTable) Lookup(id string) (Command, bool) {
	if c, ok := t[id]; ok {
		return c, true
	}
	return Command{ID: id, Label: id, Kind: KindFormat}, false
}

// DefaultCommands returns the built-in command table.
func DefaultCommands() CommandTable {
	table := CommandTable{}
	for _, c := range []Command{
		{ID: "bold", Label: "Bold"},
		{ID: "italic", Label: "Italic"},
		{ID: "underline", Label: "Underline"},
		{ID: "strikethrough", Label: "Strikethrough"},
		{ID: "insertunorderedlist", Label: "Unordered List"},
		{ID: "insertorderedlist", Label: "Ordered List"},
		{ID: "indent", Label: "Indent"},
		{ID: "outdent", Label: "Outdent"},
		{ID: "undo", Label: "Undo"},
		{ID: "redo", Label: "Redo"},
		{ID: "unlink", Label: "Remove Hyperlink"},
		{
			ID:                CommandCreateLink,
			Label:             "Add Hyperlink",
			Kind:              KindInput,
			RequiresSelection: true,
			SelectionNotice:   "Please select the text you wish to hyperlink.",
			Prompt:            "Enter URL",
			PromptDefault:     "http://",
			EmptyNotice:       "Please enter a URL.",
		},
		{
			ID:            CommandURLImage,
			Label:         "Add image from URL",
			Kind:          KindInput,
			Exec:          CommandInsertImage,
			Prompt:        "Enter Image URL",
			PromptDefault: "http://",
			EmptyNotice:   "Please enter a URL.",
		},
		{
			ID:            CommandForeColor,
			Label:         "Change Color",
			Kind:          KindInput,
			Prompt:        "Change Color",
			Validate:      IsColor,
			Canonical:     CanonicalColor,
			InvalidNotice: "Please pick a palette colour or enter #rrggbb.",
		},
		{ID: CommandSeparator, Label: "|", Kind: KindSeparator},
		{ID: CommandToggleView, Label: "Toggle View", Kind: KindStructural},
	} {
		table[c.ID] = c
	}
	return table
}

// Palette is the fixed colour grid offered by the forecolor command.
var Palette = [][]string{
	{"000000", "993300", "333300", "003300", "003366", "000077", "333399", "333333"},
	{"770000", "ff6600", "777700", "007700", "007777", "0000ff", "666699", "777777"},
	{"ff0000", "ff9900", "99cc00", "339966", "33cccc", "3366f0", "770077", "999999"},
	{"ff00ff", "ffcc00", "ffff00", "00ff00", "00ffff", "00ccff", "993366", "cccccc"},
	{"ff99cc", "ffcc99", "ffff99", "ccffcc", "ccffff", "99ccff", "cc9977", "ffffff"},
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsColor reports whether value is a palette entry (with or without '#')
// or a #rrggbb literal.
func IsColor(value string) bool {
	if hexColor.MatchString(value) {
		return true
	}
	v := strings.ToLower(strings.TrimPrefix(value, "#"))
	for _, row := range Palette {
		for _, c := range row {
			if c == v {
				return true
			}
		}
	}
	return false
}

// CanonicalColor returns value as a lower-case #rrggbb literal.
func CanonicalColor(value string) string {
	return "#" + strings.ToLower(strings.TrimPrefix(value, "#"))
}
