package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// MockPrompter is a mock implementation of driven.Prompter.
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Prompt(message, defaultValue string) (string, error) {
	args := m.Called(message, defaultValue)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Alert(message string) {
	m.Called(message)
}

// scriptedSurface is a rendered surface whose ExecCommand runs a hook.
type scriptedSurface struct {
	markup   string
	selected string
	css      bool
	focused  bool
	visible  bool
	pending  []func()
	calls    []string
	onExec   func(name, param1, param2 string) error
}

func (s *scriptedSurface) InnerHTML() string { return s.markup }

func (s *scriptedSurface) SetInnerHTML(markup string) error {
	s.markup = markup
	return nil
}

func (s *scriptedSurface) ExecCommand(name, param1, param2 string) error {
	s.calls = append(s.calls, name)
	if s.onExec != nil {
		return s.onExec(name, param1, param2)
	}
	return domain.ErrDispatchIgnored
}

func (s *scriptedSurface) Selection() string          { return s.selected }
func (s *scriptedSurface) Focus()                     { s.focused = true }
func (s *scriptedSurface) Show()                      { s.visible = true }
func (s *scriptedSurface) Hide()                      { s.visible = false }
func (s *scriptedSurface) WhenAttached(fn func())     { s.pending = append(s.pending, fn) }
func (s *scriptedSurface) SupportsStyleWithCSS() bool { return s.css }

// settle runs queued WhenAttached callbacks.
func (s *scriptedSurface) settle() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
}
