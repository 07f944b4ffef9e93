// Package tui provides the terminal editor host.
// It implements a driving adapter following hexagonal architecture principles:
// key presses become editor commands and the editor's surfaces are drawn
// as a formatted canvas or a raw HTML textarea.
package tui

import (
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
)

// Canvas is the host's view of the rendered surface: the visible text,
// the selection, and the tick that completes a pending attachment.
type Canvas interface {
	// Text returns the visible text of the document.
	Text() string

	// Range returns the selection as character offsets.
	Range() (int, int)

	// Select selects the characters in [start, end).
	Select(start, end int)

	// Selection returns the selected text.
	Selection() string

	// Settle completes a pending visibility change.
	Settle()
}

// Ports aggregates everything the TUI drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor is the editing session.
	Editor driving.Editor

	// Canvas is the rendered surface the editor writes to.
	Canvas Canvas

	// Plain is the source surface the editor mirrors into.
	Plain driven.PlainSurface

	// Prompter answers the editor's prompts from the TUI's input line.
	Prompter *Prompter

	// Documents persists the document on save. Optional.
	Documents driving.DocumentService

	// Name is the document name used when saving.
	Name string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Editor == nil {
		return ErrMissingEditor
	}
	if p.Canvas == nil {
		return ErrMissingCanvas
	}
	if p.Plain == nil {
		return ErrMissingPlain
	}
	if p.Prompter == nil {
		return ErrMissingPrompter
	}
	return nil
}
