// Package toolbar provides the command bar component for the TUI.
package toolbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/editable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/editable/internal/core/domain"
)

// Toolbar displays the editor's buttons with one of them highlighted.
// Navigation skips separators and disabled buttons.
type Toolbar struct {
	buttons  []domain.Button
	selected int
	styles   *styles.Styles
	width    int
}

// New creates an empty toolbar.
func New(s *styles.Styles) *Toolbar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Toolbar{
		selected: -1,
		styles:   s,
		width:    80,
	}
}

// Init initialises the toolbar.
func (t *Toolbar) Init() tea.Cmd {
	return nil
}

// Update handles toolbar navigation keys.
func (t *Toolbar) Update(msg tea.Msg) (*Toolbar, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyTab:
			t.Next()
		case tea.KeyShiftTab:
			t.Prev()
		default:
		}
	}
	return t, nil
}

// View renders the buttons on one line, wrapping at the toolbar width.
func (t *Toolbar) View() string {
	if len(t.buttons) == 0 {
		return ""
	}

	rows := []string{}
	row := make([]string, 0, len(t.buttons))
	used := 0
	for i, b := range t.buttons {
		cell := t.render(i, b)
		w := lipgloss.Width(cell)
		if used > 0 && used+w > t.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, cell)
		used += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n")
}

func (t *Toolbar) render(i int, b domain.Button) string {
	switch {
	case b.Separator:
		return t.styles.Muted.Render(" │ ")
	case !b.Enabled:
		return t.styles.ButtonDisabled.Render(b.Label)
	case i == t.selected:
		return t.styles.ButtonActive.Render(b.Label)
	default:
		return t.styles.Button.Render(b.Label)
	}
}

// SetButtons replaces the buttons. The highlight stays on the same
// command when it is still selectable.
func (t *Toolbar) SetButtons(buttons []domain.Button) {
	var current string
	if b, ok := t.Current(); ok {
		current = b.ID
	}
	t.buttons = buttons
	t.selected = -1
	for i, b := range buttons {
		if b.ID == current && selectable(b) {
			t.selected = i
			return
		}
	}
	t.Next()
}

// Buttons returns the buttons.
func (t *Toolbar) Buttons() []domain.Button {
	return t.buttons
}

// Current returns the highlighted button.
func (t *Toolbar) Current() (domain.Button, bool) {
	if t.selected < 0 || t.selected >= len(t.buttons) {
		return domain.Button{}, false
	}
	return t.buttons[t.selected], true
}

// Next highlights the next selectable button, wrapping around.
func (t *Toolbar) Next() {
	t.move(1)
}

// Prev highlights the previous selectable button, wrapping around.
func (t *Toolbar) Prev() {
	t.move(-1)
}

func (t *Toolbar) move(step int) {
	n := len(t.buttons)
	for k := 1; k <= n; k++ {
		i := ((t.selected+step*k)%n + n) % n
		if selectable(t.buttons[i]) {
			t.selected = i
			return
		}
	}
	t.selected = -1
}

// SetWidth sets the toolbar width.
func (t *Toolbar) SetWidth(width int) {
	t.width = width
}

func selectable(b domain.Button) bool {
	return b.Enabled && !b.Separator
}
