package tui

import (
	"sync"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/logger"
)

// Ensure Prompter implements the interface.
var _ driven.Prompter = (*Prompter)(nil)

// Prompter answers editor prompts with values the TUI collected before
// running the command. Alerts are queued for the status bar.
type Prompter struct {
	mu      sync.Mutex
	answers []answer
	alerts  []string
}

type answer struct {
	value     string
	cancelled bool
}

// NewPrompter creates a prompter with nothing queued.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Answer queues value as the reply to the next prompt.
func (p *Prompter) Answer(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answers = append(p.answers, answer{value: value})
}

// Cancel queues a dismissal as the reply to the next prompt.
func (p *Prompter) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answers = append(p.answers, answer{cancelled: true})
}

// Prompt returns the next queued answer. With nothing queued the prompt
// counts as dismissed.
func (p *Prompter) Prompt(message, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.answers) == 0 {
		logger.Debug("tui: unanswered prompt %q", message)
		return "", domain.ErrUserCancelled
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.cancelled {
		return "", domain.ErrUserCancelled
	}
	return a.value, nil
}

// Alert queues message for display.
func (p *Prompter) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, message)
}

// TakeAlerts returns and clears the queued alerts.
func (p *Prompter) TakeAlerts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	alerts := p.alerts
	p.alerts = nil
	return alerts
}
