// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/editable/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the editing canvas with its toolbar.
	ViewEditor ViewType = iota
	// ViewPrompt collects input for a command.
	ViewPrompt
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewPrompt:
		return "prompt"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SurfaceShown is sent on the frame after the rendered surface was shown,
// once its attachment has taken effect.
type SurfaceShown struct{}

// CommandRun reports the outcome of a toolbar command.
type CommandRun struct {
	Command string
	Err     error
}

// DocumentSaved signals the document was persisted.
type DocumentSaved struct {
	Document *domain.StoredDocument
	Err      error
}

// OptionsChanged carries reloaded editor options.
type OptionsChanged struct {
	Options domain.EditorOptions
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
