package driven

// RenderedSurface is the live editable view where formatting commands take
// immediate visual effect.
type RenderedSurface interface {
	// InnerHTML returns the current markup of the editable body.
	InnerHTML() string

	// SetInnerHTML replaces the markup of the editable body.
	// Returns domain.ErrSurfaceDetached if the surface is not attached
	// to the live view.
	SetInnerHTML(markup string) error

	// ExecCommand dispatches a named formatting operation with up to two
	// string parameters. Unsupported commands return domain.ErrDispatchIgnored.
	ExecCommand(name, param1, param2 string) error

	// Selection returns the currently selected text, or "" when the
	// selection is collapsed.
	Selection() string

	// Focus moves input focus into the surface.
	Focus()

	// Show makes the surface visible. Attachment to the live view
	// completes asynchronously.
	Show()

	// Hide removes the surface from the live view.
	Hide()

	// WhenAttached runs fn once, after the next attachment of the surface
	// to the live view has taken effect. Callbacks run in registration order.
	WhenAttached(fn func())

	// SupportsStyleWithCSS reports whether the engine understands the
	// styleWithCSS compatibility command.
	SupportsStyleWithCSS() bool
}

// PlainSurface is the raw-text view of the same content (a textarea).
type PlainSurface interface {
	// Value returns the raw text.
	Value() string

	// SetValue replaces the raw text.
	SetValue(value string)

	// Show makes the surface visible.
	Show()

	// Hide hides the surface.
	Hide()
}
