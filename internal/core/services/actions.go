package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// Action runs a toolbar command by identifier. Input commands prompt the
// user first; structural commands act on the editor itself. After a
// dispatched action the rendered surface regains focus.
func (e *Editor) Action(command string) error {
	if e.closed.Load() {
		return domain.ErrEditorClosed
	}

	cmd, _ := e.commands.Lookup(command)
	if cmd.Kind == domain.KindSeparator {
		return fmt.Errorf("%w: %s is not a command", domain.ErrInvalidInput, command)
	}
	if e.Mode() == domain.ModeSource && cmd.Kind != domain.KindStructural {
		return fmt.Errorf("%w: %s", domain.ErrCommandUnavailable, command)
	}

	var err error
	switch cmd.Kind {
	case domain.KindStructural:
		return e.ToggleView()
	case domain.KindInput:
		err = e.runInput(cmd)
	default:
		err = e.runFormat(cmd)
	}
	if err != nil {
		return err
	}

	e.rendered.Focus()
	return nil
}

// runInput collects a value for cmd and dispatches it.
func (e *Editor) runInput(cmd domain.Command) error {
	if cmd.RequiresSelection && e.rendered.Selection() == "" {
		e.prompter.Alert(cmd.SelectionNotice)
		return domain.ErrEmptySelection
	}

	answer, err := e.prompter.Prompt(cmd.Prompt, cmd.PromptDefault)
	if err != nil {
		return err
	}

	value := strings.TrimSpace(answer)
	if value == "" {
		if notice := cmd.BlankNotice(); notice != "" {
			e.prompter.Alert(notice)
		}
		return fmt.Errorf("%w: %s needs a value", domain.ErrInvalidInput, cmd.ID)
	}
	if cmd.Validate != nil && !cmd.Validate(value) {
		e.prompter.Alert(cmd.InvalidNotice)
		return fmt.Errorf("%w: %q", domain.ErrInvalidInput, value)
	}
	if cmd.Canonical != nil {
		value = cmd.Canonical(value)
	}

	return e.Execute(cmd.Dispatch(), "", value)
}

// runFormat dispatches cmd with empty parameters. Engines that understand
// styleWithCSS are switched to tag output first.
func (e *Editor) runFormat(cmd domain.Command) error {
	if e.rendered.SupportsStyleWithCSS() {
		if err := e.Execute(domain.CommandStyleWithCSS, "", "false"); err != nil {
			return err
		}
	}
	return e.Execute(cmd.Dispatch(), "", "")
}
