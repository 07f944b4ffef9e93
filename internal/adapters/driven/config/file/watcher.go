package file

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/editable/internal/logger"
)

// defaultDebounce coalesces the burst of events an editor produces when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// ErrWatcherClosed indicates Run was called on a closed watcher.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reloads a ConfigStore when its file changes and notifies a callback.
// The directory is watched rather than the file, so atomic replace-on-save
// keeps working.
type Watcher struct {
	store    *ConfigStore
	onChange func()
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// NewWatcher creates a watcher for store. onChange runs after every
// successful reload.
func NewWatcher(store *ConfigStore, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		store:    store,
		onChange: onChange,
		debounce: defaultDebounce,
		watcher:  fsw,
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	fsw := w.watcher
	w.mu.Unlock()

	target := filepath.Clean(w.store.Path())
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	if err := w.store.Load(); err != nil {
		logger.Warn("config reload %s: %v", w.store.Path(), err)
		return
	}
	logger.Debug("config reloaded from %s", w.store.Path())
	if w.onChange != nil {
		w.onChange()
	}
}

// Close stops watching. Run returns once the event channels drain.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
