package domain

import "errors"

// Domain errors represent editing and business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Editing Errors.

	// ErrUserCancelled indicates a prompt was dismissed without input.
	// The action is aborted and nothing is dispatched.
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrEmptySelection indicates a selection-dependent command was
	// invoked with nothing selected.
	ErrEmptySelection = errors.New("nothing selected")

	// ErrDispatchIgnored indicates the rendered surface does not support
	// or rejected a formatting command. It is never escalated past the editor.
	ErrDispatchIgnored = errors.New("dispatch ignored")

	// ErrReentrantCall indicates Execute was invoked while another
	// command was still executing. The call is dropped.
	ErrReentrantCall = errors.New("command already executing")

	// ErrWrongMode indicates a formatting command was issued while the
	// source surface is authoritative.
	ErrWrongMode = errors.New("not available in source mode")

	// ErrCommandUnavailable indicates the toolbar button for a command is disabled.
	ErrCommandUnavailable = errors.New("command unavailable")

	// ErrSurfaceDetached indicates a write against a surface that is hidden
	// or torn down.
	ErrSurfaceDetached = errors.New("surface detached")

	// ErrEditorClosed indicates the editor has been closed.
	ErrEditorClosed = errors.New("editor closed")
)
