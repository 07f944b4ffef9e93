package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage editor settings",
	Long: `View and configure the editor toolbar, labels and rendering flavour.

Settings are stored in config.toml in the configuration directory and are
picked up by running editors when the file changes.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsToolbarCmd = &cobra.Command{
	Use:   "toolbar [on|off]",
	Short: "Show or hide the toolbar",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsToolbar,
}

var settingsButtonsCmd = &cobra.Command{
	Use:   "buttons [list]",
	Short: "Set the toolbar buttons",
	Long: `Set the toolbar buttons from a comma-separated list of command IDs.

Use "separator" to group buttons. Run "editable commands" to list the
available IDs.

Example:
  editable settings buttons bold,italic,separator,createlink,toggleview`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsButtons,
}

var settingsLabelCmd = &cobra.Command{
	Use:   "label [command] [text]",
	Short: "Override a button label",
	Long:  `Override the display label of a command. Omit the text to restore the default.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSettingsLabel,
}

var settingsFlavorCmd = &cobra.Command{
	Use:   "flavor [name]",
	Short: "Set the rendering flavour",
	Long: `Set the rendering flavour used by new editors.

Available flavours:
  gecko   - legacy presentational tags
  webkit  - Apple-style spans
  trident - upper-case tags, no styleWithCSS`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFlavor,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsToolbarCmd)
	settingsCmd.AddCommand(settingsButtonsCmd)
	settingsCmd.AddCommand(settingsLabelCmd)
	settingsCmd.AddCommand(settingsFlavorCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	opts, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Editor]")
	cmd.Printf("  Toolbar: %s\n", onOff(opts.Toolbar))
	cmd.Printf("  Flavor: %s\n", opts.Flavor)
	cmd.Printf("  Buttons: %s\n", strings.Join(opts.Buttons, ","))
	cmd.Println()

	cmd.Println("[Labels]")
	if len(opts.Text) == 0 {
		cmd.Println("  (defaults)")
		return nil
	}
	ids := make([]string, 0, len(opts.Text))
	for id := range opts.Text {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		cmd.Printf("  %s: %s\n", id, opts.Text[id])
	}
	return nil
}

func runSettingsToolbar(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	visible, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetToolbar(visible); err != nil {
		return fmt.Errorf("failed to save toolbar: %w", err)
	}
	cmd.Printf("Toolbar %s\n", onOff(visible))
	return nil
}

func runSettingsButtons(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.SetButtons(args[0]); err != nil {
		return fmt.Errorf("failed to save buttons: %w", err)
	}
	cmd.Printf("Buttons set to %s\n", strings.Join(domain.ParseButtons(args[0]), ","))
	return nil
}

func runSettingsLabel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	id, label := args[0], ""
	if len(args) == 2 {
		label = args[1]
	}
	if err := settingsService.SetLabel(id, label); err != nil {
		return fmt.Errorf("failed to save label: %w", err)
	}
	if label == "" {
		cmd.Printf("Label for %s restored\n", id)
		return nil
	}
	cmd.Printf("Label for %s set to %q\n", id, label)
	return nil
}

func runSettingsFlavor(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	flavor := domain.Flavor(strings.ToLower(args[0]))
	if err := settingsService.SetFlavor(flavor); err != nil {
		return fmt.Errorf("failed to save flavor: %w", err)
	}
	cmd.Printf("Flavor set to %s\n", flavor)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Save(settingsService.GetDefaults()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults")
	return nil
}

// parseOnOff accepts on/off, yes/no and anything strconv.ParseBool does.
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "show":
		return true, nil
	case "off", "no", "hide":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value %q: use on or off", s)
	}
	return v, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
