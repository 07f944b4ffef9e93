// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui/styles"
)

// PromptInput asks the user for a single value, such as a link URL or
// a colour, on behalf of a toolbar command.
type PromptInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	message   string
	command   string
	palette   [][]string
	width     int
}

// NewPromptInput creates a new prompt input component.
func NewPromptInput(s *styles.Styles) *PromptInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 2048
	ti.Width = 50

	return &PromptInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the prompt input.
func (p *PromptInput) Init() tea.Cmd {
	return textinput.Blink
}

// Open shows message for command, pre-filled with defaultValue, and
// focuses the input.
func (p *PromptInput) Open(command, message, defaultValue string) tea.Cmd {
	p.command = command
	p.message = message
	p.textinput.SetValue(defaultValue)
	p.textinput.CursorEnd()
	return p.textinput.Focus()
}

// Close blurs and clears the input.
func (p *PromptInput) Close() {
	p.textinput.Blur()
	p.textinput.Reset()
	p.command = ""
	p.message = ""
	p.palette = nil
}

// SetPalette shows a grid of choices under the field until Close.
// Entries are hex colours without the leading '#'.
func (p *PromptInput) SetPalette(palette [][]string) {
	p.palette = palette
}

// Highlighted returns the palette entry matching the current value, or ""
// when none does.
func (p *PromptInput) Highlighted() string {
	v := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(p.Value()), "#"))
	for _, row := range p.palette {
		for _, c := range row {
			if c == v {
				return c
			}
		}
	}
	return ""
}

// Update handles input messages.
func (p *PromptInput) Update(msg tea.Msg) (*PromptInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the prompt input.
func (p *PromptInput) View() string {
	label := p.styles.Title.Render(p.message + ": ")
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	line := lipgloss.JoinHorizontal(lipgloss.Center, label, field)
	if len(p.palette) == 0 {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, p.paletteView())
}

func (p *PromptInput) paletteView() string {
	current := p.Highlighted()
	rows := make([]string, 0, len(p.palette))
	for _, row := range p.palette {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			if c == current {
				cells = append(cells, p.styles.Selected.Render("#"+c))
				continue
			}
			cells = append(cells, p.styles.Muted.Render("#"+c))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// Command returns the command the prompt was opened for.
func (p *PromptInput) Command() string {
	return p.command
}

// Message returns the prompt message.
func (p *PromptInput) Message() string {
	return p.message
}

// Value returns the current input value.
func (p *PromptInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PromptInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focused returns whether the input is focused.
func (p *PromptInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width of the input.
func (p *PromptInput) SetWidth(width int) {
	p.width = width
	// Account for label and padding
	inputWidth := width - 24
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PromptInput) Width() int {
	return p.width
}
