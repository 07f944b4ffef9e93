package driving

import "github.com/custodia-labs/editable/internal/core/domain"

// SettingsService manages persisted editor options.
type SettingsService interface {
	// Get returns the current options, filling unset keys with defaults.
	Get() (domain.EditorOptions, error)

	// Save persists every option.
	Save(opts domain.EditorOptions) error

	// SetToolbar shows or hides the toolbar.
	SetToolbar(visible bool) error

	// SetButtons replaces the button list from a comma-separated string.
	SetButtons(list string) error

	// SetLabel overrides the label for a command. An empty label removes
	// the override.
	SetLabel(id, label string) error

	// SetFlavor selects the rendered surface engine.
	SetFlavor(flavor domain.Flavor) error

	// Reload re-reads the backing configuration.
	Reload() error

	// GetDefaults returns the default options.
	GetDefaults() domain.EditorOptions
}
