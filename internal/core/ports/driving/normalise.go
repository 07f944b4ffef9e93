package driving

import "github.com/custodia-labs/editable/internal/core/domain"

// NormaliseService exposes the markup normaliser to hosts.
type NormaliseService interface {
	// Normalise returns the canonical form of markup.
	Normalise(markup string) string

	// Check reports whether markup is already canonical, along with its
	// canonical form.
	Check(markup string) (string, bool)

	// Explain returns the output of every stage for one pass over markup.
	Explain(markup string) []domain.RuleStep
}
