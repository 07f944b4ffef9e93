package mcp

import (
	"github.com/custodia-labs/editable/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Normalise backs the normalize_html tool.
	Normalise driving.NormaliseService

	// Documents backs save_document and the document resources.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Documents is optional; without it only normalisation is offered.
func (p *Ports) Validate() error {
	if p == nil || p.Normalise == nil {
		return ErrMissingNormaliseService
	}
	return nil
}
