package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/logger"
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open the editor",
	Long: `Open the interactive editor.

With a name, the stored document of that name is opened and saved back on
exit. With --file, the file seeds the editor and receives the result when
no name is given. Otherwise the result is printed on exit.

Controls:
  tab/shift+tab - Move between toolbar buttons
  enter         - Press the highlighted button
  ctrl+t        - Toggle between formatted and HTML source view
  ctrl+s        - Save the document
  f1            - Help
  ctrl+q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringP("file", "f", "", "Seed the editor from a file (- for stdin)")
	editCmd.Flags().String("flavor", "", "Rendering flavour for this session")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in editor: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if newEditor == nil {
		return errEditorNotConfigured
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	file, _ := cmd.Flags().GetString("file")
	flavor, _ := cmd.Flags().GetString("flavor")

	seed, name, err := loadSeed(cmd, name, file)
	if err != nil {
		return err
	}
	opts, err := editorOptions(flavor)
	if err != nil {
		return err
	}

	session, err := newEditor(seed, opts)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}
	defer session.Editor.Close()

	ports := &tui.Ports{
		Editor:   session.Editor,
		Canvas:   session.Canvas,
		Plain:    session.Plain,
		Prompter: session.Prompter,
		Name:     name,
	}
	if name != "" {
		ports.Documents = documentService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	var progOpts []tea.ProgramOption
	if file == "-" {
		// Standard input carried the seed; read keys from the terminal.
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	p := app.Program(progOpts...)
	if watchConfig != nil && settingsService != nil {
		go func() {
			err := watchConfig(ctx, func() {
				current, err := settingsService.Get()
				if err != nil {
					logger.Warn("settings reload: %v", err)
					return
				}
				// The flavour of a running editor is fixed.
				current.Flavor = opts.Flavor
				p.Send(messages.OptionsChanged{Options: current})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return storeResult(cmd, name, file, app.Result())
}

// loadSeed returns the initial markup and the document name to save under.
// A named document that does not exist yet starts empty.
func loadSeed(cmd *cobra.Command, name, file string) (string, string, error) {
	if file != "" {
		seed, err := readInput(cmd, []string{file})
		return seed, name, err
	}
	if name == "" {
		return "", "", nil
	}
	if documentService == nil {
		return "", "", errDocumentsNotConfigured
	}

	doc, err := documentService.Resolve(cmd.Context(), name)
	if errors.Is(err, domain.ErrNotFound) {
		return "", name, nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	return doc.Content, doc.Name, nil
}

// editorOptions returns the stored options with an optional flavour override.
func editorOptions(flavor string) (domain.EditorOptions, error) {
	opts := domain.DefaultEditorOptions()
	if settingsService != nil {
		current, err := settingsService.Get()
		if err != nil {
			return domain.EditorOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		opts = current
	}

	if flavor != "" {
		f := domain.Flavor(strings.ToLower(flavor))
		if !f.IsValid() {
			return domain.EditorOptions{}, fmt.Errorf("%w: unknown flavor %q", domain.ErrInvalidInput, flavor)
		}
		opts.Flavor = f
	}
	return opts, nil
}

// storeResult saves the edited markup under name, writes it back to file,
// or prints it.
func storeResult(cmd *cobra.Command, name, file, result string) error {
	switch {
	case name != "":
		if documentService == nil {
			return errDocumentsNotConfigured
		}
		doc, err := documentService.Save(cmd.Context(), name, result)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
		cmd.Printf("Saved %s (revision %s)\n", doc.Name, doc.Revision)
	case file != "" && file != "-":
		if err := os.WriteFile(file, []byte(result+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
		cmd.Printf("Wrote %s\n", file)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}
