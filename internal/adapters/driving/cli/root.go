// Package cli provides the command-line interface for editable.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui"
	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
	"github.com/custodia-labs/editable/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Service instances, set by the bootstrap before any command runs.
var (
	normaliseService driving.NormaliseService
	documentService  driving.DocumentService
	settingsService  driving.SettingsService
	newEditor        EditorFactory
	watchConfig      WatchFunc
)

var (
	errNormaliseNotConfigured = errors.New("normalise service not configured")
	errDocumentsNotConfigured = errors.New("document service not configured")
	errSettingsNotConfigured  = errors.New("settings service not configured")
	errEditorNotConfigured    = errors.New("editor factory not configured")
)

// EditSession is one editor together with the surfaces it drives.
type EditSession struct {
	Editor   driving.Editor
	Canvas   tui.Canvas
	Plain    driven.PlainSurface
	Prompter *tui.Prompter
}

// EditorFactory builds an edit session seeded with markup.
type EditorFactory func(seed string, opts domain.EditorOptions) (*EditSession, error)

// WatchFunc watches the configuration and calls onChange after every
// reload until ctx is cancelled.
type WatchFunc func(ctx context.Context, onChange func()) error

// Services is the set of services the commands run against.
type Services struct {
	Normalise driving.NormaliseService
	Documents driving.DocumentService
	Settings  driving.SettingsService
	NewEditor EditorFactory
	Watch     WatchFunc
}

// Options carries the global flags into the bootstrap.
type Options struct {
	ConfigDir string
	DataDir   string
}

// Bootstrap builds the services from the global flags. The returned func
// releases them.
type Bootstrap func(opts Options) (*Services, func(), error)

var (
	bootstrap Bootstrap
	shutdown  func()

	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "editable",
	Short: "Edit and normalise HTML documents",
	Long: `editable is a rich-text editor for the terminal.

Documents are edited either formatted or as raw HTML. Whatever the editing
engine emits is normalised into one canonical form before it is stored.

Usage:
  editable edit notes
  editable normalize page.html`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.editable)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.editable)")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || shutdown != nil {
		return nil
	}
	svc, release, err := bootstrap(Options{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("starting editable: %w", err)
	}
	SetServices(svc)
	shutdown = release
	return nil
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices installs the services used by the commands.
func SetServices(svc *Services) {
	if svc == nil {
		svc = &Services{}
	}
	normaliseService = svc.Normalise
	documentService = svc.Documents
	settingsService = svc.Settings
	newEditor = svc.NewEditor
	watchConfig = svc.Watch
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as serve.
func Execute(ctx context.Context) error {
	defer func() {
		if shutdown != nil {
			shutdown()
			shutdown = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
