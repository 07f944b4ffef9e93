package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/editable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/editable/internal/core/domain"
)

func newTestApp(t *testing.T, seed string) *App {
	t.Helper()
	ports, _ := newTestPorts(t, seed)
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app
}

func press(app *App, keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(tea.KeyMsg{Type: k})
	}
	return cmd
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_Success(t *testing.T) {
	app := newTestApp(t, "<p>hello</p>")

	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, status.StateReady, app.Status().State())
	assert.Equal(t, "notes", app.Status().Name())
	start, end := app.Selection()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports, _ := newTestPorts(t, "")
	ports.Canvas = nil

	app, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingCanvas)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, "")

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	assert.NotNil(t, newTestApp(t, "").Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports, _ := newTestPorts(t, "")
	app, err := NewApp(ports)
	require.NoError(t, err)
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, app.Ready())
	assert.Equal(t, 80, app.Status().Width())
}

func TestApp_BoldShortcut(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")

	press(app, tea.KeyHome, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight, tea.KeyShiftRight)
	start, end := app.Selection()
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)

	press(app, tea.KeyCtrlB)

	assert.Equal(t, "<p><strong>hello</strong> world</p>", app.Result())
	assert.NoError(t, app.Err())

	press(app, tea.KeyCtrlZ)
	assert.Equal(t, "<p>hello world</p>", app.Result())
}

func TestApp_CaretMovement(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyType
		anchor int
		head   int
	}{
		{"home", []tea.KeyType{tea.KeyHome}, 0, 0},
		{"left from end", []tea.KeyType{tea.KeyLeft}, 4, 4},
		{"left clamps at start", []tea.KeyType{tea.KeyHome, tea.KeyLeft}, 0, 0},
		{"right clamps at end", []tea.KeyType{tea.KeyRight}, 5, 5},
		{"extend left", []tea.KeyType{tea.KeyShiftLeft, tea.KeyShiftLeft}, 5, 3},
		{"left collapses selection", []tea.KeyType{tea.KeyShiftLeft, tea.KeyShiftLeft, tea.KeyLeft}, 3, 3},
		{"select all", []tea.KeyType{tea.KeyCtrlA}, 0, 5},
		{"right collapses to end", []tea.KeyType{tea.KeyCtrlA, tea.KeyRight}, 5, 5},
		{"end", []tea.KeyType{tea.KeyHome, tea.KeyEnd}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, "<p>hello</p>")

			press(app, tt.keys...)

			anchor, head := app.Selection()
			assert.Equal(t, tt.anchor, anchor)
			assert.Equal(t, tt.head, head)
		})
	}
}

func TestApp_Typing(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")

	typeText(app, "!")
	assert.Equal(t, "<p>hello world!</p>", app.Result())

	press(app, tea.KeyHome)
	typeText(app, "Hey")
	press(app, tea.KeySpace)
	assert.Equal(t, "<p>Hey hello world!</p>", app.Result())

	press(app, tea.KeyEnd, tea.KeyBackspace)
	assert.Equal(t, "<p>Hey hello world</p>", app.Result())
}

func TestApp_CreateLink_NeedsSelection(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")

	press(app, tea.KeyCtrlK)

	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, status.StateNotice, app.Status().State())
	assert.Equal(t, "Please select the text you wish to hyperlink.", app.Status().Message())
	assert.Equal(t, "<p>hello world</p>", app.Result())
}

func TestApp_CreateLink_Prompt(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")

	press(app, tea.KeyCtrlA)
	cmd := press(app, tea.KeyCtrlK)

	assert.NotNil(t, cmd)
	require.Equal(t, messages.ViewPrompt, app.CurrentView())
	assert.Equal(t, "http://", app.prompt.Value())
	assert.Contains(t, app.View(), "Enter URL")

	typeText(app, "a.io")
	press(app, tea.KeyEnter)

	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, `<p><a href="http://a.io">hello world</a></p>`, app.Result())
	assert.Equal(t, status.StateReady, app.Status().State())
}

func TestApp_Prompt_Cancel(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")
	press(app, tea.KeyCtrlA, tea.KeyCtrlK)
	require.Equal(t, messages.ViewPrompt, app.CurrentView())

	press(app, tea.KeyEsc)

	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, "<p>hello world</p>", app.Result())
	assert.NoError(t, app.Err())
	assert.Empty(t, app.ports.Prompter.TakeAlerts())
}

func TestApp_Prompt_BlankAnswerShowsNotice(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")
	press(app, tea.KeyCtrlA, tea.KeyCtrlK)
	require.Equal(t, messages.ViewPrompt, app.CurrentView())

	app.prompt.SetValue("   ")
	press(app, tea.KeyEnter)

	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, "<p>hello world</p>", app.Result())
	assert.Equal(t, status.StateNotice, app.Status().State())
	assert.Equal(t, "Please enter a URL.", app.Status().Message())
}

func TestApp_URLImage_FromToolbar(t *testing.T) {
	app := newTestApp(t, "<p>red</p>")
	press(app, tea.KeyCtrlA)
	for range app.Toolbar().Buttons() {
		if b, ok := app.Toolbar().Current(); ok && b.ID == domain.CommandURLImage {
			break
		}
		press(app, tea.KeyTab)
	}

	press(app, tea.KeyEnter)
	require.Equal(t, messages.ViewPrompt, app.CurrentView())
	app.prompt.SetValue("not-a-url")
	press(app, tea.KeyEnter)

	assert.Equal(t, `<p>red<img src="not-a-url"></p>`, app.Result())
}

func TestApp_ForeColor_ShowsPalette(t *testing.T) {
	app := newTestApp(t, "<p>hello</p>")

	app.run(domain.CommandForeColor)

	require.Equal(t, messages.ViewPrompt, app.CurrentView())
	assert.Contains(t, app.View(), "#ff6600")
	app.prompt.SetValue("FF6600")
	assert.Equal(t, "ff6600", app.prompt.Highlighted())

	press(app, tea.KeyEsc)
	assert.Equal(t, "", app.prompt.Highlighted())
}

func TestApp_ToolbarPress(t *testing.T) {
	app := newTestApp(t, "<p>hello</p>")
	press(app, tea.KeyCtrlA)

	b, ok := app.Toolbar().Current()
	require.True(t, ok)
	require.Equal(t, "bold", b.ID)

	press(app, tea.KeyTab)
	b, _ = app.Toolbar().Current()
	assert.Equal(t, "italic", b.ID)

	press(app, tea.KeyEnter)
	assert.Equal(t, "<p><em>hello</em></p>", app.Result())
}

func TestApp_ToggleView_RoundTrip(t *testing.T) {
	app := newTestApp(t, "<p>hello</p>")

	cmd := press(app, tea.KeyCtrlT)

	assert.NotNil(t, cmd)
	assert.Equal(t, domain.ModeSource, app.ports.Editor.Mode())
	assert.Equal(t, status.StateSource, app.Status().State())
	assert.Equal(t, "<p>hello</p>", app.source.Value())
	for _, b := range app.Toolbar().Buttons() {
		assert.Equal(t, b.Kind == domain.KindStructural, b.Enabled, b.ID)
	}

	app.source.SetValue("<P>Edited<BR></P>")
	cmd = press(app, tea.KeyCtrlT)
	require.NotNil(t, cmd)
	assert.Equal(t, domain.ModeRendered, app.ports.Editor.Mode())

	// Before the canvas attaches the editor refuses formatting.
	press(app, tea.KeyCtrlA, tea.KeyCtrlB)
	assert.ErrorIs(t, app.Err(), domain.ErrSurfaceDetached)

	msg := cmd()
	require.IsType(t, messages.SurfaceShown{}, msg)
	app.Update(msg)

	assert.Equal(t, "Edited", app.ports.Canvas.Text())
	assert.Equal(t, "<p>Edited</p>", app.ports.Editor.Sync())
}

func TestApp_SourceMode_TypingMirrorsPlain(t *testing.T) {
	app := newTestApp(t, "<p>a</p>")
	press(app, tea.KeyCtrlT)

	typeText(app, "<p>b</p>")

	assert.Equal(t, "<p>a</p><p>b</p>", app.ports.Plain.Value())
	assert.Equal(t, "<p>a</p>", app.Result())

	// Shortcuts are plain keys to the textarea in source mode.
	press(app, tea.KeyCtrlB)
	assert.NoError(t, app.Err())
}

func TestApp_Save(t *testing.T) {
	ports, _ := newTestPorts(t, "<b>hi</b>")
	var gotName, gotContent string
	ports.Documents = &MockDocumentService{
		SaveFunc: func(_ context.Context, name, content string) (*domain.StoredDocument, error) {
			gotName, gotContent = name, content
			return &domain.StoredDocument{ID: "d1", Name: name, Content: content, Revision: "abc"}, nil
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)

	cmd := press(app, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, "notes", gotName)
	assert.Equal(t, "<strong>hi</strong>", gotContent)
	require.NotNil(t, app.Saved())
	assert.Equal(t, "d1", app.Saved().ID)
	assert.Equal(t, status.StateSaved, app.Status().State())
}

func TestApp_Save_Errors(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		app := newTestApp(t, "")

		cmd := press(app, tea.KeyCtrlS)

		assert.Nil(t, cmd)
		assert.ErrorIs(t, app.Err(), ErrNoDocumentStore)
	})

	t.Run("store fails", func(t *testing.T) {
		ports, _ := newTestPorts(t, "")
		ports.Documents = &MockDocumentService{
			SaveFunc: func(context.Context, string, string) (*domain.StoredDocument, error) {
				return nil, errors.New("disk full")
			},
		}
		app, err := NewApp(ports)
		require.NoError(t, err)

		app.Update(press(app, tea.KeyCtrlS)())

		require.Error(t, app.Err())
		assert.Contains(t, app.Err().Error(), "disk full")
		assert.Nil(t, app.Saved())
	})
}

func TestApp_OptionsChanged(t *testing.T) {
	app := newTestApp(t, "")
	require.NotEmpty(t, app.Toolbar().Buttons())

	opts := domain.DefaultEditorOptions()
	opts.Toolbar = false
	app.Update(messages.OptionsChanged{Options: opts})

	assert.Empty(t, app.Toolbar().Buttons())

	opts.Toolbar = true
	opts.Buttons = []string{"bold"}
	opts.Text = map[string]string{"bold": "B"}
	app.Update(messages.OptionsChanged{Options: opts})

	require.Len(t, app.Toolbar().Buttons(), 1)
	assert.Equal(t, "B", app.Toolbar().Buttons()[0].Label)

	app.Update(messages.OptionsChanged{Options: domain.EditorOptions{Flavor: "netscape"}})
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
}

func TestApp_Help(t *testing.T) {
	app := newTestApp(t, "")

	press(app, tea.KeyF1)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	view := app.View()
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "toggle view")

	press(app, tea.KeyEsc)
	assert.Equal(t, messages.ViewEditor, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, "")

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Equal(t, status.StateError, app.Status().State())
}

func TestApp_CommandRun(t *testing.T) {
	app := newTestApp(t, "")

	app.Update(messages.CommandRun{Command: "bold", Err: domain.ErrReentrantCall})

	assert.ErrorIs(t, app.Err(), domain.ErrReentrantCall)
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, "")

			_, cmd := app.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_Quit_SyncsSourceMode(t *testing.T) {
	app := newTestApp(t, "<p>a</p>")
	press(app, tea.KeyCtrlT)
	app.source.SetValue("<p>b</p>")

	press(app, tea.KeyCtrlQ)

	assert.Equal(t, "<p>b</p>", app.Result())
}

func TestApp_View(t *testing.T) {
	app := newTestApp(t, "<p>hello world</p>")

	view := app.View()

	assert.Contains(t, view, "hello world")
	assert.Contains(t, view, "Bold")
	assert.Contains(t, view, "notes")

	press(app, tea.KeyCtrlT)
	assert.Contains(t, app.View(), "Source")
}

func TestApp_View_EmptyDocument(t *testing.T) {
	app := newTestApp(t, "")

	assert.Contains(t, app.View(), "empty document")
}
