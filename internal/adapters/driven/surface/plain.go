package surface

import (
	"sync"

	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Plain implements the interface.
var _ driven.PlainSurface = (*Plain)(nil)

// Plain is an in-memory textarea. It starts hidden, holding the seed value.
type Plain struct {
	mu      sync.RWMutex
	value   string
	visible bool
}

// NewPlain creates a hidden plain surface holding value.
func NewPlain(value string) *Plain {
	return &Plain{value: value}
}

// Value returns the raw text.
func (p *Plain) Value() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// SetValue replaces the raw text.
func (p *Plain) SetValue(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = value
}

// Show makes the surface visible.
func (p *Plain) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = true
}

// Hide hides the surface.
func (p *Plain) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

// Visible reports whether the surface is shown.
func (p *Plain) Visible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible
}
