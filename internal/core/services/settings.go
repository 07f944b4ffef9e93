package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyToolbar    = "editor.toolbar"
	keyButtons    = "editor.buttons"
	keyFlavor     = "editor.flavor"
	keyTextPrefix = "editor.text."
)

// SettingsService manages editor options.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current options. Unset or invalid keys fall back to defaults.
func (s *SettingsService) Get() (domain.EditorOptions, error) {
	defaults := domain.DefaultEditorOptions()

	opts := domain.EditorOptions{
		Toolbar: s.getBool(keyToolbar, defaults.Toolbar),
		Buttons: s.getButtons(defaults.Buttons),
		Text:    s.getLabels(),
		Flavor:  s.getFlavor(defaults.Flavor),
	}
	if err := opts.Validate(); err != nil {
		return domain.EditorOptions{}, fmt.Errorf("stored options: %w", err)
	}
	return opts, nil
}

// Save persists every option. Labels missing from opts are removed.
func (s *SettingsService) Save(opts domain.EditorOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyToolbar, opts.Toolbar); err != nil {
		return fmt.Errorf("save toolbar: %w", err)
	}
	if err := s.configStore.Set(keyButtons, strings.Join(opts.Buttons, ",")); err != nil {
		return fmt.Errorf("save buttons: %w", err)
	}
	flavor := opts.Flavor
	if flavor == "" {
		flavor = domain.FlavorGecko
	}
	if err := s.configStore.Set(keyFlavor, flavor.String()); err != nil {
		return fmt.Errorf("save flavor: %w", err)
	}

	for _, key := range s.configStore.Keys(keyTextPrefix) {
		if _, ok := opts.Text[strings.TrimPrefix(key, keyTextPrefix)]; ok {
			continue
		}
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("remove label %s: %w", key, err)
		}
	}
	for id, label := range opts.Text {
		if label == "" {
			continue
		}
		if err := s.configStore.Set(keyTextPrefix+id, label); err != nil {
			return fmt.Errorf("save label %s: %w", id, err)
		}
	}
	return nil
}

// SetToolbar shows or hides the toolbar.
func (s *SettingsService) SetToolbar(visible bool) error {
	if err := s.configStore.Set(keyToolbar, visible); err != nil {
		return fmt.Errorf("save toolbar: %w", err)
	}
	return nil
}

// SetButtons replaces the button list. Every entry must be a known command.
func (s *SettingsService) SetButtons(list string) error {
	buttons := domain.ParseButtons(list)
	if len(buttons) == 0 {
		return fmt.Errorf("%w: button list is empty", domain.ErrInvalidInput)
	}
	commands := domain.DefaultCommands()
	for _, b := range buttons {
		if _, ok := commands[b]; !ok {
			return fmt.Errorf("%w: unknown command %q", domain.ErrInvalidInput, b)
		}
	}
	if err := s.configStore.Set(keyButtons, strings.Join(buttons, ",")); err != nil {
		return fmt.Errorf("save buttons: %w", err)
	}
	return nil
}

// SetLabel overrides the display label of a command.
// An empty label removes the override.
func (s *SettingsService) SetLabel(id, label string) error {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, ". \t") {
		return fmt.Errorf("%w: malformed command id %q", domain.ErrInvalidInput, id)
	}
	if label == "" {
		if err := s.configStore.Delete(keyTextPrefix + id); err != nil {
			return fmt.Errorf("remove label %s: %w", id, err)
		}
		return nil
	}
	if err := s.configStore.Set(keyTextPrefix+id, label); err != nil {
		return fmt.Errorf("save label %s: %w", id, err)
	}
	return nil
}

// SetFlavor selects the rendered surface engine.
func (s *SettingsService) SetFlavor(flavor domain.Flavor) error {
	if !flavor.IsValid() {
		return fmt.Errorf("%w: unknown flavor %q", domain.ErrInvalidInput, flavor)
	}
	if err := s.configStore.Set(keyFlavor, flavor.String()); err != nil {
		return fmt.Errorf("save flavor: %w", err)
	}
	return nil
}

// Reload re-reads the backing configuration.
func (s *SettingsService) Reload() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reload settings: %w", err)
	}
	return nil
}

// GetDefaults returns the default options.
func (s *SettingsService) GetDefaults() domain.EditorOptions {
	return domain.DefaultEditorOptions()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getButtons accepts either a comma-separated string or a TOML array.
func (s *SettingsService) getButtons(defaultVal []string) []string {
	if list := s.configStore.GetString(keyButtons); list != "" {
		if buttons := domain.ParseButtons(list); len(buttons) > 0 {
			return buttons
		}
	}
	if slice := s.configStore.GetStringSlice(keyButtons); len(slice) > 0 {
		if buttons := domain.ParseButtons(strings.Join(slice, ",")); len(buttons) > 0 {
			return buttons
		}
	}
	return defaultVal
}

func (s *SettingsService) getLabels() map[string]string {
	labels := map[string]string{}
	for _, key := range s.configStore.Keys(keyTextPrefix) {
		if label := s.configStore.GetString(key); label != "" {
			labels[strings.TrimPrefix(key, keyTextPrefix)] = label
		}
	}
	return labels
}

func (s *SettingsService) getFlavor(defaultVal domain.Flavor) domain.Flavor {
	val := s.configStore.GetString(keyFlavor)
	if val == "" {
		return defaultVal
	}
	flavor := domain.Flavor(strings.ToLower(val))
	if !flavor.IsValid() {
		return defaultVal
	}
	return flavor
}
