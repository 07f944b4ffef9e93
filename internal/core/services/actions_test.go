package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/editable/internal/adapters/driven/surface"
	"github.com/custodia-labs/editable/internal/core/domain"
	htmlnorm "github.com/custodia-labs/editable/internal/normalisers/html"
)

func newActionEditor(t *testing.T, seed string) (*Editor, *surface.Rendered, *MockPrompter) {
	t.Helper()
	rendered := surface.NewRendered(domain.FlavorGecko)
	prompter := &MockPrompter{}
	ed, err := NewEditor(rendered, surface.NewPlain(seed), htmlnorm.New(), prompter, domain.DefaultEditorOptions())
	require.NoError(t, err)
	return ed, rendered, prompter
}

func TestEditor_Action_CreateLink(t *testing.T) {
	ed, rendered, prompter := newActionEditor(t, "<p>hello world</p>")
	require.True(t, rendered.SelectText("world"))
	prompter.On("Prompt", "Enter URL", "http://").Return("  http://example.com  ", nil)

	require.NoError(t, ed.Action(domain.CommandCreateLink))

	assert.Equal(t, `<p>hello <a href="http://example.com">world</a></p>`, ed.Document())
	assert.True(t, rendered.Focused())
	prompter.AssertExpectations(t)
}

func TestEditor_Action_CreateLink_EmptySelection(t *testing.T) {
	ed, _, prompter := newActionEditor(t, "<p>hello world</p>")
	prompter.On("Alert", "Please select the text you wish to hyperlink.").Return()

	err := ed.Action(domain.CommandCreateLink)

	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.Equal(t, "<p>hello world</p>", ed.Document())
	prompter.AssertExpectations(t)
	prompter.AssertNotCalled(t, "Prompt", mock.Anything, mock.Anything)
}

func TestEditor_Action_PromptOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
		want   error
		notice string
	}{
		{"cancelled", "", domain.ErrUserCancelled, domain.ErrUserCancelled, ""},
		{"empty answer", "", nil, domain.ErrInvalidInput, "Please enter a URL."},
		{"blank answer", "   ", nil, domain.ErrInvalidInput, "Please enter a URL."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ed, rendered, prompter := newActionEditor(t, "<p>hello world</p>")
			require.True(t, rendered.SelectText("world"))
			prompter.On("Prompt", "Enter URL", "http://").Return(tc.answer, tc.err)
			if tc.notice != "" {
				prompter.On("Alert", tc.notice).Return().Once()
			}

			err := ed.Action(domain.CommandCreateLink)

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, "<p>hello world</p>", rendered.InnerHTML())
			assert.False(t, rendered.Focused())
			if tc.notice == "" {
				prompter.AssertNotCalled(t, "Alert", mock.Anything)
			}
			prompter.AssertExpectations(t)
		})
	}
}

func TestEditor_Action_URLImage(t *testing.T) {
	ed, _, prompter := newActionEditor(t, "<p>ab</p>")
	prompter.On("Prompt", "Enter Image URL", "http://").Return("http://x.org/a.png", nil)

	require.NoError(t, ed.Action(domain.CommandURLImage))

	assert.Equal(t, `<p>ab<img src="http://x.org/a.png"></p>`, ed.Document())
}

func TestEditor_Action_URLImage_BlankAnswer(t *testing.T) {
	ed, _, prompter := newActionEditor(t, "<p>ab</p>")
	prompter.On("Prompt", "Enter Image URL", "http://").Return(" \t ", nil)
	prompter.On("Alert", "Please enter a URL.").Return().Once()

	err := ed.Action(domain.CommandURLImage)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "<p>ab</p>", ed.Document())
	prompter.AssertExpectations(t)
}

func TestEditor_Action_ForeColor(t *testing.T) {
	ed, rendered, prompter := newActionEditor(t, "<p>red</p>")
	rendered.Select(0, 3)
	prompter.On("Prompt", "Change Color", "").Return("FF0000", nil).Once()

	require.NoError(t, ed.Action(domain.CommandForeColor))
	assert.Equal(t, `<p><font color="#ff0000">red</font></p>`, ed.Document())

	prompter.On("Prompt", "Change Color", "").Return("crimson", nil).Once()
	prompter.On("Alert", "Please pick a palette colour or enter #rrggbb.").Return().Once()

	err := ed.Action(domain.CommandForeColor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, `<p><font color="#ff0000">red</font></p>`, ed.Document())
	prompter.AssertExpectations(t)
}

func TestEditor_Action_FormatCommands(t *testing.T) {
	tests := []struct {
		name    string
		css     bool
		command string
		calls   []string
	}{
		{"styleWithCSS first", true, "bold", []string{domain.CommandStyleWithCSS, "bold"}},
		{"no styleWithCSS support", false, "bold", []string{"bold"}},
		{"unknown command passes through", true, "justifycenter", []string{domain.CommandStyleWithCSS, "justifycenter"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &scriptedSurface{css: tc.css}
			ed, err := NewEditor(s, surface.NewPlain(""), htmlnorm.New(), &MockPrompter{}, domain.DefaultEditorOptions())
			require.NoError(t, err)

			require.NoError(t, ed.Action(tc.command))
			assert.Equal(t, tc.calls, s.calls)
			assert.True(t, s.focused)
		})
	}
}

func TestEditor_Action_Bold(t *testing.T) {
	ed, rendered, _ := newActionEditor(t, "<p>hello world</p>")
	require.True(t, rendered.SelectText("hello"))

	require.NoError(t, ed.Action("bold"))
	assert.Equal(t, "<p><strong>hello</strong> world</p>", ed.Document())

	require.NoError(t, ed.Action("bold"))
	assert.Equal(t, "<p>hello world</p>", ed.Document())

	require.NoError(t, ed.Action("undo"))
	assert.Equal(t, "<p><strong>hello</strong> world</p>", ed.Document())
}

func TestEditor_Action_Separator(t *testing.T) {
	ed, _, _ := newActionEditor(t, "")
	assert.ErrorIs(t, ed.Action(domain.CommandSeparator), domain.ErrInvalidInput)
}

func TestEditor_Action_SourceMode(t *testing.T) {
	ed, rendered, prompter := newActionEditor(t, "<p>x</p>")
	require.NoError(t, ed.Action(domain.CommandToggleView))
	require.Equal(t, domain.ModeSource, ed.Mode())

	for _, cmd := range []string{"bold", domain.CommandCreateLink, "justifycenter"} {
		assert.ErrorIs(t, ed.Action(cmd), domain.ErrCommandUnavailable, cmd)
	}
	prompter.AssertNotCalled(t, "Prompt", mock.Anything, mock.Anything)

	require.NoError(t, ed.Action(domain.CommandToggleView))
	assert.Equal(t, domain.ModeRendered, ed.Mode())
	rendered.Settle()
	assert.Equal(t, "<p>x</p>", rendered.InnerHTML())
}

func TestDefaultCommands_AllDispatch(t *testing.T) {
	for id, cmd := range domain.DefaultCommands() {
		if cmd.Kind != domain.KindFormat {
			continue
		}
		t.Run(id, func(t *testing.T) {
			s := &scriptedSurface{}
			ed, err := NewEditor(s, surface.NewPlain(""), htmlnorm.New(), &MockPrompter{}, domain.DefaultEditorOptions())
			require.NoError(t, err)

			require.NoError(t, ed.Action(id))
			assert.Equal(t, []string{id}, s.calls)
		})
	}
}
