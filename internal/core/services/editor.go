package services

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
	"github.com/custodia-labs/editable/internal/logger"
)

// Ensure Editor implements the interface.
var _ driving.Editor = (*Editor)(nil)

// Editor is the editing state machine. It owns the canonical document
// and routes every formatting command through the normaliser.
//
// The document, mode and options are guarded by mu, which is never held
// across a surface call. Surface calls are serialised by the executing
// flag instead.
type Editor struct {
	rendered   driven.RenderedSurface
	plain      driven.PlainSurface
	normaliser driven.Normaliser
	prompter   driven.Prompter
	commands   domain.CommandTable

	executing atomic.Bool
	closed    atomic.Bool

	mu       sync.RWMutex
	document string
	mode     domain.Mode
	options  domain.EditorOptions

	// generation increments on every toggle so that a deferred write
	// scheduled by an earlier toggle can tell it has been superseded.
	generation uint64
	carrying   bool
}

// NewEditor creates an editor in rendered mode. The plain surface's value
// seeds the document; it is normalised and written into the rendered surface.
func NewEditor(
	rendered driven.RenderedSurface,
	plain driven.PlainSurface,
	normaliser driven.Normaliser,
	prompter driven.Prompter,
	opts domain.EditorOptions,
) (*Editor, error) {
	switch {
	case rendered == nil:
		return nil, fmt.Errorf("%w: rendered surface is required", domain.ErrInvalidInput)
	case plain == nil:
		return nil, fmt.Errorf("%w: plain surface is required", domain.ErrInvalidInput)
	case normaliser == nil:
		return nil, fmt.Errorf("%w: normaliser is required", domain.ErrInvalidInput)
	case prompter == nil:
		return nil, fmt.Errorf("%w: prompter is required", domain.ErrInvalidInput)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	doc := normaliser.Normalise(plain.Value())
	if err := rendered.SetInnerHTML(doc); err != nil {
		return nil, fmt.Errorf("seed rendered surface: %w", err)
	}
	plain.SetValue(doc)
	plain.Hide()
	rendered.Show()

	return &Editor{
		rendered:   rendered,
		plain:      plain,
		normaliser: normaliser,
		prompter:   prompter,
		commands:   domain.DefaultCommands(),
		document:   doc,
		mode:       domain.ModeRendered,
		options:    cloneOptions(opts),
	}, nil
}

// Execute dispatches a formatting command to the rendered surface and
// stores the normalised read-back as the document. Dispatch failures are
// logged and swallowed; the read-back still happens.
func (e *Editor) Execute(command, param1, param2 string) error {
	if e.closed.Load() {
		return domain.ErrEditorClosed
	}
	if !e.executing.CompareAndSwap(false, true) {
		logger.Debug("editor: dropped re-entrant %q", command)
		return domain.ErrReentrantCall
	}
	defer e.executing.Store(false)

	e.mu.RLock()
	mode, carrying := e.mode, e.carrying
	e.mu.RUnlock()
	if mode != domain.ModeRendered {
		return domain.ErrWrongMode
	}
	if carrying {
		// The rendered surface still shows the pre-toggle markup.
		logger.Debug("editor: dropped %q before rendered surface attached", command)
		return domain.ErrSurfaceDetached
	}

	if err := e.dispatch(command, param1, param2); err != nil {
		logger.Debug("editor: %s: %v", command, err)
	}
	e.readBack()
	return nil
}

// dispatch runs one surface command, converting a panic into an error.
func (e *Editor) dispatch(command, param1, param2 string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatch %s panicked: %v", command, r)
		}
	}()
	return e.rendered.ExecCommand(command, param1, param2)
}

// readBack normalises the rendered markup into the document and mirrors
// it into the plain surface.
func (e *Editor) readBack() string {
	doc := e.normaliser.Normalise(e.rendered.InnerHTML())
	e.mu.Lock()
	e.document = doc
	e.mu.Unlock()
	e.plain.SetValue(doc)
	return doc
}

// ToggleView switches between rendered and source mode.
func (e *Editor) ToggleView() error {
	if e.closed.Load() {
		return domain.ErrEditorClosed
	}
	if !e.executing.CompareAndSwap(false, true) {
		logger.Debug("editor: dropped re-entrant toggle")
		return domain.ErrReentrantCall
	}
	defer e.executing.Store(false)

	if e.Mode() == domain.ModeRendered {
		e.toSource()
	} else {
		e.toRendered()
	}
	return nil
}

func (e *Editor) toSource() {
	e.mu.RLock()
	raw, carrying := e.document, e.carrying
	e.mu.RUnlock()
	if !carrying {
		raw = e.rendered.InnerHTML()
	}
	doc := e.normaliser.Normalise(raw)

	e.mu.Lock()
	e.document = doc
	e.mode = domain.ModeSource
	e.carrying = false
	e.generation++
	e.mu.Unlock()

	e.plain.SetValue(doc)
	e.plain.Show()
	e.rendered.Hide()
	logger.Debug("editor: switched to source mode")
}

func (e *Editor) toRendered() {
	raw := e.plain.Value()

	e.mu.Lock()
	e.document = raw
	e.mode = domain.ModeRendered
	e.carrying = true
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	e.rendered.Show()
	e.rendered.WhenAttached(func() { e.carry(gen) })
	e.plain.Hide()
	logger.Debug("editor: switched to rendered mode")
}

// carry writes the document into the rendered surface once it is attached.
func (e *Editor) carry(gen uint64) {
	if e.closed.Load() {
		logger.Debug("editor: deferred write skipped, editor closed")
		return
	}

	e.mu.RLock()
	current := gen == e.generation && e.mode == domain.ModeRendered
	doc := e.document
	e.mu.RUnlock()
	if !current {
		logger.Debug("editor: deferred write superseded")
		return
	}

	if err := e.rendered.SetInnerHTML(doc); err != nil {
		logger.Warn("editor: deferred write dropped: %v", err)
		return
	}

	e.mu.Lock()
	if gen == e.generation {
		e.carrying = false
	}
	e.mu.Unlock()
}

// Sync brings the document up to date with the authoritative surface.
func (e *Editor) Sync() string {
	if e.closed.Load() {
		return e.Document()
	}

	e.mu.RLock()
	mode, carrying, doc := e.mode, e.carrying, e.document
	e.mu.RUnlock()

	switch {
	case mode == domain.ModeSource:
		doc = e.plain.Value()
		e.mu.Lock()
		e.document = doc
		e.mu.Unlock()
		return doc
	case carrying:
		return doc
	default:
		return e.readBack()
	}
}

// Document returns the canonical document.
func (e *Editor) Document() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.document
}

// Mode returns the current editing mode.
func (e *Editor) Mode() domain.Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// Toolbar returns the button states. In source mode only structural
// buttons are enabled.
func (e *Editor) Toolbar() []domain.Button {
	e.mu.RLock()
	opts, mode := e.options, e.mode
	e.mu.RUnlock()

	buttons := domain.BuildToolbar(opts, e.commands)
	if mode == domain.ModeSource {
		for i := range buttons {
			buttons[i].Enabled = buttons[i].Kind == domain.KindStructural
		}
	}
	return buttons
}

// Options returns a copy of the current options.
func (e *Editor) Options() domain.EditorOptions {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return cloneOptions(e.options)
}

// Commands returns the command table.
func (e *Editor) Commands() domain.CommandTable {
	return e.commands
}

// SetOptions replaces the toolbar configuration. The flavour of an
// existing rendered surface is fixed; a changed flavour applies to the
// next editor.
func (e *Editor) SetOptions(opts domain.EditorOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	e.options = cloneOptions(opts)
	e.mu.Unlock()
	return nil
}

// FocusLabel focuses the rendered surface. No-op in source mode.
func (e *Editor) FocusLabel() {
	if e.closed.Load() || e.Mode() != domain.ModeRendered {
		return
	}
	e.rendered.Focus()
}

// Close releases the editor. Deferred writes that fire afterwards are no-ops.
func (e *Editor) Close() {
	e.closed.Store(true)
}

func cloneOptions(opts domain.EditorOptions) domain.EditorOptions {
	opts.Buttons = slices.Clone(opts.Buttons)
	opts.Text = maps.Clone(opts.Text)
	if opts.Text == nil {
		opts.Text = map[string]string{}
	}
	return opts
}
