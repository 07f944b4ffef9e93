package tui

import "errors"

// ErrMissingEditor is returned when the editor is not provided.
var ErrMissingEditor = errors.New("tui: editor is required")

// ErrMissingCanvas is returned when the rendered canvas is not provided.
var ErrMissingCanvas = errors.New("tui: canvas is required")

// ErrMissingPlain is returned when the plain surface is not provided.
var ErrMissingPlain = errors.New("tui: plain surface is required")

// ErrMissingPrompter is returned when the prompter is not provided.
var ErrMissingPrompter = errors.New("tui: prompter is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrNoDocumentStore is returned when saving without a document service.
var ErrNoDocumentStore = errors.New("tui: no document store configured")
