package driving

import "github.com/custodia-labs/editable/internal/core/domain"

// Editor is a rich-text editing session bound to a rendered and a plain
// surface. All methods are safe to call from the host's event loop.
type Editor interface {
	// Execute dispatches a formatting command to the rendered surface and
	// stores the normalised result as the document.
	// Returns domain.ErrReentrantCall while another command is executing
	// and domain.ErrWrongMode in source mode.
	Execute(command, param1, param2 string) error

	// Action runs a toolbar command by identifier, prompting for input
	// where the command needs it.
	Action(command string) error

	// ToggleView switches between rendered and source mode.
	ToggleView() error

	// Sync brings the document up to date with the authoritative surface
	// and returns it. Hosts call it before submitting the document.
	Sync() string

	// Document returns the canonical document.
	Document() string

	// Mode returns the current editing mode.
	Mode() domain.Mode

	// Toolbar returns the current button states.
	Toolbar() []domain.Button

	// Commands returns the command table the toolbar resolves against.
	Commands() domain.CommandTable

	// Options returns a copy of the current options.
	Options() domain.EditorOptions

	// SetOptions replaces the toolbar configuration.
	SetOptions(opts domain.EditorOptions) error

	// FocusLabel focuses the rendered surface, as clicking the field label
	// does. No-op in source mode.
	FocusLabel()

	// Close releases the editor. Pending deferred writes become no-ops.
	Close()
}
