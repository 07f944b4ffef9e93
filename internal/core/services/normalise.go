package services

import (
	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
	"github.com/custodia-labs/editable/internal/core/ports/driving"
)

// Ensure NormaliseService implements the interface.
var _ driving.NormaliseService = (*NormaliseService)(nil)

// NormaliseService exposes the normaliser to the CLI, HTTP and MCP hosts.
type NormaliseService struct {
	normaliser driven.TracingNormaliser
}

// NewNormaliseService creates a new normalise service.
func NewNormaliseService(normaliser driven.TracingNormaliser) *NormaliseService {
	return &NormaliseService{normaliser: normaliser}
}

// Normalise returns the canonical form of markup.
func (s *NormaliseService) Normalise(markup string) string {
	return s.normaliser.Normalise(markup)
}

// Check reports whether markup is already canonical.
func (s *NormaliseService) Check(markup string) (string, bool) {
	out := s.normaliser.Normalise(markup)
	return out, out == markup
}

// Explain returns the output of every rule for a single pass.
func (s *NormaliseService) Explain(markup string) []domain.RuleStep {
	return s.normaliser.Trace(markup)
}
