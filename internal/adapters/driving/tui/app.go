package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/components/toolbar"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/editable/internal/core/domain"
)

// Surface commands the canvas understands for typing.
const (
	commandInsertText = "insertText"
	commandDelete     = "delete"
)

// App is the terminal editor following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to the editor and its surfaces.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	toolbar *toolbar.Toolbar
	prompt  *input.PromptInput
	status  *status.Bar

	// source edits the plain surface while in source mode.
	source textarea.Model

	// currentView tracks which view is active.
	currentView messages.ViewType

	// anchor is where the selection started; head is its moving end.
	anchor int
	head   int

	// saved is the last stored revision of the document.
	saved *domain.StoredDocument

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new terminal editor with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Placeholder = "<p>HTML source</p>"

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		toolbar:     toolbar.New(s),
		prompt:      input.NewPromptInput(s),
		status:      status.NewBar(s, km),
		source:      ta,
		currentView: messages.ViewEditor,
	}
	a.status.SetName(ports.Name)
	a.toolbar.SetButtons(ports.Editor.Toolbar())
	a.syncCaret()
	if ports.Editor.Mode() == domain.ModeSource {
		a.source.SetValue(ports.Plain.Value())
		a.source.Focus()
	}
	a.showMode()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	title := "editable"
	if a.ports.Name != "" {
		title += " - " + a.ports.Name
	}
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(title),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, a.quit()
		}
		switch a.currentView {
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Cancel) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewEditor
				a.showMode()
			}
			return a, nil
		case messages.ViewPrompt:
			return a.updatePrompt(msg)
		case messages.ViewEditor:
			return a.updateEditor(msg)
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.SurfaceShown:
		// The canvas attaches now; the editor's deferred write runs here.
		a.ports.Canvas.Settle()
		a.syncCaret()
		return a, nil

	case messages.CommandRun:
		a.after(msg.Command, msg.Err)
		return a, nil

	case messages.DocumentSaved:
		if msg.Err != nil {
			a.setError(fmt.Errorf("save: %w", msg.Err))
			return a, nil
		}
		a.saved = msg.Document
		a.status.SetState(status.StateSaved)
		a.status.SetMessage(msg.Document.Revision)
		return a, nil

	case messages.OptionsChanged:
		if err := a.ports.Editor.SetOptions(msg.Options); err != nil {
			a.setError(err)
			return a, nil
		}
		a.toolbar.SetButtons(a.ports.Editor.Toolbar())
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	// Forward other messages (cursor blink) to the focused input.
	var cmd tea.Cmd
	switch {
	case a.currentView == messages.ViewPrompt:
		a.prompt, cmd = a.prompt.Update(msg)
	case a.ports.Editor.Mode() == domain.ModeSource:
		a.source, cmd = a.source.Update(msg)
	}
	return a, cmd
}

func (a *App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	km := a.keymap

	switch {
	case keymap.Matches(k, km.Save):
		return a, a.save()
	case keymap.Matches(k, km.ToggleView):
		return a, a.toggle()
	case keymap.Matches(k, km.Help):
		a.currentView = messages.ViewHelp
		a.status.SetState(status.StateHelp)
		return a, nil
	}

	if a.ports.Editor.Mode() == domain.ModeSource {
		var cmd tea.Cmd
		a.source, cmd = a.source.Update(msg)
		a.ports.Plain.SetValue(a.source.Value())
		return a, cmd
	}

	lo, hi := min(a.anchor, a.head), max(a.anchor, a.head)
	switch {
	case keymap.Matches(k, km.NextButton), keymap.Matches(k, km.PrevButton):
		var cmd tea.Cmd
		a.toolbar, cmd = a.toolbar.Update(msg)
		return a, cmd
	case keymap.Matches(k, km.Press):
		if b, ok := a.toolbar.Current(); ok {
			return a, a.run(b.ID)
		}
	case keymap.Matches(k, km.Left):
		if lo == hi {
			lo--
		}
		a.setSelection(lo, lo)
	case keymap.Matches(k, km.Right):
		if lo == hi {
			hi++
		}
		a.setSelection(hi, hi)
	case keymap.Matches(k, km.ExtendLeft):
		a.setSelection(a.anchor, a.head-1)
	case keymap.Matches(k, km.ExtendRight):
		a.setSelection(a.anchor, a.head+1)
	case keymap.Matches(k, km.Home):
		a.setSelection(0, 0)
	case keymap.Matches(k, km.End):
		n := a.textLen()
		a.setSelection(n, n)
	case keymap.Matches(k, km.SelectAll):
		a.setSelection(0, a.textLen())
	case msg.Type == tea.KeyBackspace:
		a.execute(commandDelete, "")
	case msg.Type == tea.KeySpace:
		a.execute(commandInsertText, " ")
	case msg.Type == tea.KeyRunes:
		a.execute(commandInsertText, string(msg.Runes))
	default:
		if id, ok := km.Shortcut(k); ok {
			return a, a.run(id)
		}
	}
	return a, nil
}

func (a *App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Press):
		id := a.prompt.Command()
		a.ports.Prompter.Answer(a.prompt.Value())
		a.closePrompt()
		a.after(id, a.ports.Editor.Action(id))
		return a, nil
	case keymap.Matches(k, a.keymap.Cancel):
		id := a.prompt.Command()
		a.ports.Prompter.Cancel()
		a.closePrompt()
		a.after(id, a.ports.Editor.Action(id))
		return a, nil
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

// run executes a toolbar command. Input commands open the prompt first,
// unless they need a selection and there is none, in which case the
// editor raises its notice.
func (a *App) run(id string) tea.Cmd {
	c, _ := a.ports.Editor.Commands().Lookup(id)
	switch {
	case c.Kind == domain.KindStructural:
		return a.toggle()
	case c.Kind == domain.KindInput && (!c.RequiresSelection || a.ports.Canvas.Selection() != ""):
		a.currentView = messages.ViewPrompt
		a.status.SetState(status.StatePrompt)
		cmd := a.prompt.Open(id, c.Prompt, c.PromptDefault)
		if id == domain.CommandForeColor {
			a.prompt.SetPalette(domain.Palette)
		}
		return cmd
	}
	a.after(id, a.ports.Editor.Action(id))
	return nil
}

// execute sends a typing command straight to the editor.
func (a *App) execute(command, value string) {
	a.after(command, a.ports.Editor.Execute(command, "", value))
}

// after refreshes the view from the editor once a command has run.
func (a *App) after(command string, err error) {
	alerts := a.ports.Prompter.TakeAlerts()
	a.syncCaret()
	a.toolbar.SetButtons(a.ports.Editor.Toolbar())

	switch {
	case len(alerts) > 0:
		a.status.SetState(status.StateNotice)
		a.status.SetMessage(alerts[len(alerts)-1])
	case err == nil, errors.Is(err, domain.ErrUserCancelled):
		a.showMode()
	default:
		a.setError(fmt.Errorf("%s: %w", command, err))
	}
}

func (a *App) closePrompt() {
	a.prompt.Close()
	a.currentView = messages.ViewEditor
}

// toggle switches modes. Entering rendered mode schedules SurfaceShown
// for the next frame, when the canvas attachment takes effect.
func (a *App) toggle() tea.Cmd {
	ed := a.ports.Editor
	if ed.Mode() == domain.ModeSource {
		a.ports.Plain.SetValue(a.source.Value())
	}
	if err := ed.ToggleView(); err != nil {
		a.setError(err)
		return nil
	}
	a.toolbar.SetButtons(ed.Toolbar())
	a.showMode()

	if ed.Mode() == domain.ModeSource {
		a.source.SetValue(a.ports.Plain.Value())
		return a.source.Focus()
	}
	a.source.Blur()
	return func() tea.Msg { return messages.SurfaceShown{} }
}

// save stores the synced document in the background.
func (a *App) save() tea.Cmd {
	docs := a.ports.Documents
	if docs == nil {
		a.setError(ErrNoDocumentStore)
		return nil
	}
	if a.ports.Editor.Mode() == domain.ModeSource {
		a.ports.Plain.SetValue(a.source.Value())
	}
	content := a.ports.Editor.Sync()
	ctx, name := a.ctx, a.ports.Name
	return func() tea.Msg {
		doc, err := docs.Save(ctx, name, content)
		return messages.DocumentSaved{Document: doc, Err: err}
	}
}

func (a *App) quit() tea.Cmd {
	if a.ports.Editor.Mode() == domain.ModeSource {
		a.ports.Plain.SetValue(a.source.Value())
	}
	a.ports.Editor.Sync()
	return tea.Quit
}

func (a *App) setSelection(anchor, head int) {
	n := a.textLen()
	a.anchor = max(0, min(anchor, n))
	a.head = max(0, min(head, n))
	a.ports.Canvas.Select(min(a.anchor, a.head), max(a.anchor, a.head))
}

// syncCaret adopts the canvas selection after the editor changed it.
func (a *App) syncCaret() {
	start, end := a.ports.Canvas.Range()
	if start == min(a.anchor, a.head) && end == max(a.anchor, a.head) {
		return
	}
	a.anchor, a.head = start, end
}

func (a *App) textLen() int {
	return utf8.RuneCountInString(a.ports.Canvas.Text())
}

func (a *App) showMode() {
	a.err = nil
	a.status.Clear()
	if a.ports.Editor.Mode() == domain.ModeSource {
		a.status.SetState(status.StateSource)
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}

	sections := make([]string, 0, 4)
	if bar := a.toolbar.View(); bar != "" {
		sections = append(sections, bar)
	}
	if a.ports.Editor.Mode() == domain.ModeSource {
		sections = append(sections, a.styles.Border.Render(a.source.View()))
	} else {
		sections = append(sections, a.viewCanvas())
	}
	if a.currentView == messages.ViewPrompt {
		sections = append(sections, a.prompt.View())
	}
	sections = append(sections, a.status.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewCanvas draws the visible text with the selection highlighted and
// the caret shown when the selection is collapsed.
func (a *App) viewCanvas() string {
	text := []rune(a.ports.Canvas.Text())
	lo := max(0, min(a.anchor, a.head, len(text)))
	hi := max(lo, min(max(a.anchor, a.head), len(text)))

	var b strings.Builder
	b.WriteString(a.styles.Normal.Render(string(text[:lo])))
	switch {
	case lo < hi:
		b.WriteString(a.styles.Selection.Render(string(text[lo:hi])))
		b.WriteString(a.styles.Normal.Render(string(text[hi:])))
	case lo < len(text):
		b.WriteString(a.styles.Caret.Render(string(text[lo])))
		b.WriteString(a.styles.Normal.Render(string(text[lo+1:])))
	default:
		b.WriteString(a.styles.Caret.Render(" "))
	}
	if len(text) == 0 {
		b.WriteString(a.styles.Muted.Render(" empty document, ctrl+t edits the HTML source"))
	}

	style := a.styles.Canvas
	if a.width > 4 {
		style = style.Width(a.width - 4)
	}
	return style.Render(b.String())
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	columns := a.keymap.FullHelp()
	titles := []string{"Canvas", "Toolbar", "Formatting", "Editor"}

	rendered := make([]string, 0, len(columns))
	for i, column := range columns {
		lines := []string{a.styles.Subtitle.Render(titles[i])}
		for _, b := range column {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
		}
		rendered = append(rendered, lipgloss.NewStyle().PaddingRight(4).Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		"",
		a.styles.Help.Render("[esc] back to editor"),
	)
}

// Program wraps the app in a full-screen bubbletea program bound to the
// app context. Extra options are applied after the defaults.
func (a *App) Program(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	return tea.NewProgram(a, opts...)
}

// Result returns the document as it stands when the editor exits.
func (a *App) Result() string {
	return a.ports.Editor.Document()
}

// Saved returns the last stored revision, or nil if nothing was saved.
func (a *App) Saved() *domain.StoredDocument {
	return a.saved
}

// Selection returns the selection anchor and head.
func (a *App) Selection() (int, int) {
	return a.anchor, a.head
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Toolbar returns the toolbar.
func (a *App) Toolbar() *toolbar.Toolbar {
	return a.toolbar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.toolbar.SetWidth(width)
	a.status.SetWidth(width)
	a.prompt.SetWidth(width)
	a.source.SetWidth(max(20, width-4))
	a.source.SetHeight(max(3, height-8))
}
