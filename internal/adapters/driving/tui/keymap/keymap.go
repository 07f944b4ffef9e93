// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the editor, keeping the document.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Save persists the document.
	Save key.Binding

	// ToggleView switches between rendered and source mode.
	ToggleView key.Binding

	// NextButton and PrevButton move through the toolbar.
	NextButton key.Binding
	PrevButton key.Binding

	// Press runs the highlighted toolbar button.
	Press key.Binding

	// Cancel dismisses a prompt or the help view.
	Cancel key.Binding

	// Left and Right move the caret.
	Left  key.Binding
	Right key.Binding

	// ExtendLeft and ExtendRight grow the selection.
	ExtendLeft  key.Binding
	ExtendRight key.Binding

	// Home and End jump to the document edges.
	Home key.Binding
	End  key.Binding

	// SelectAll selects the whole document.
	SelectAll key.Binding

	// Shortcuts bind keys straight to command identifiers.
	Shortcuts map[string]key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle view"),
		),
		NextButton: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next button"),
		),
		PrevButton: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run button"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "caret left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "caret right"),
		),
		ExtendLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "extend selection"),
		),
		ExtendRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "extend selection"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Shortcuts: map[string]key.Binding{
			"bold": key.NewBinding(
				key.WithKeys("ctrl+b"),
				key.WithHelp("ctrl+b", "bold"),
			),
			"underline": key.NewBinding(
				key.WithKeys("ctrl+u"),
				key.WithHelp("ctrl+u", "underline"),
			),
			domain.CommandCreateLink: key.NewBinding(
				key.WithKeys("ctrl+k"),
				key.WithHelp("ctrl+k", "link"),
			),
			"undo": key.NewBinding(
				key.WithKeys("ctrl+z"),
				key.WithHelp("ctrl+z", "undo"),
			),
			"redo": key.NewBinding(
				key.WithKeys("ctrl+y"),
				key.WithHelp("ctrl+y", "redo"),
			),
		},
	}
}

// Shortcut returns the command bound to keyStr, if any.
func (k *KeyMap) Shortcut(keyStr string) (string, bool) {
	for id, b := range k.Shortcuts {
		if Matches(keyStr, b) {
			return id, true
		}
	}
	return "", false
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleView, k.Save, k.Quit, k.Help}
}

// PromptHelp returns keybindings shown while a prompt is open.
func (k *KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.Press, k.Cancel}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ExtendLeft, k.ExtendRight, k.Home, k.End, k.SelectAll},
		{k.NextButton, k.PrevButton, k.Press, k.Cancel},
		{
			k.Shortcuts["bold"], k.Shortcuts["underline"], k.Shortcuts[domain.CommandCreateLink],
			k.Shortcuts["undo"], k.Shortcuts["redo"],
		},
		{k.ToggleView, k.Save, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
