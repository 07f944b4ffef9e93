// Command editable is a terminal rich-text editor that stores documents in
// one canonical HTML form.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/editable/internal/adapters/driven/config/file"
	"github.com/custodia-labs/editable/internal/adapters/driven/export"
	"github.com/custodia-labs/editable/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/editable/internal/adapters/driven/surface"
	"github.com/custodia-labs/editable/internal/adapters/driving/cli"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui"
	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/services"
	"github.com/custodia-labs/editable/internal/logger"
	htmlnorm "github.com/custodia-labs/editable/internal/normalisers/html"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening document store: %w", err)
	}
	logger.Debug("documents: %s", store.Path())

	normaliser := htmlnorm.New()
	svc := &cli.Services{
		Normalise: services.NewNormaliseService(normaliser),
		Documents: services.NewDocumentService(store.DocumentStore(), normaliser, export.All()...),
		Settings:  services.NewSettingsService(configStore),
		NewEditor: func(seed string, editorOpts domain.EditorOptions) (*cli.EditSession, error) {
			flavor := editorOpts.Flavor
			if flavor == "" {
				flavor = domain.FlavorGecko
			}
			rendered := surface.NewRendered(flavor)
			plain := surface.NewPlain(seed)
			prompter := tui.NewPrompter()
			editor, err := services.NewEditor(rendered, plain, normaliser, prompter, editorOpts)
			if err != nil {
				return nil, err
			}
			return &cli.EditSession{Editor: editor, Canvas: rendered, Plain: plain, Prompter: prompter}, nil
		},
		Watch: func(ctx context.Context, onChange func()) error {
			watcher, err := file.NewWatcher(configStore, onChange)
			if err != nil {
				return err
			}
			defer func() { _ = watcher.Close() }()
			return watcher.Run(ctx)
		},
	}

	shutdown := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing document store: %v", err)
		}
	}
	return svc, shutdown, nil
}
