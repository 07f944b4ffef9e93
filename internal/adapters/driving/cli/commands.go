package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/core/domain"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the editor commands",
	Long: `List every built-in editor command with its kind and label.

Commands marked with * are on the configured toolbar.`,
	Args: cobra.NoArgs,
	RunE: runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, _ []string) error {
	opts := domain.DefaultEditorOptions()
	if settingsService != nil {
		current, err := settingsService.Get()
		if err != nil {
			return err
		}
		opts = current
	}

	table := domain.DefaultCommands()
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	cmd.Printf("  %-22s %-11s %s\n", "ID", "KIND", "LABEL")
	for _, id := range ids {
		mark := " "
		if opts.Toolbar && slices.Contains(opts.Buttons, id) {
			mark = "*"
		}
		c := table[id]
		label := opts.Label(table, id)
		if c.Prompt != "" {
			label += " (" + c.Prompt + ")"
		}
		cmd.Printf("%s %-22s %-11s %s\n", mark, id, c.Kind, label)
	}
	return nil
}
