package driven

import "github.com/custodia-labs/editable/internal/core/domain"

// Normaliser rewrites editor markup into its canonical form.
// Normalise is total: it never fails and never panics.
type Normaliser interface {
	// Normalise returns the canonical form of markup.
	// Normalise(Normalise(x)) == Normalise(x) for every x.
	Normalise(markup string) string
}

// TracingNormaliser is a Normaliser that can report its stages.
type TracingNormaliser interface {
	Normaliser

	// Rules returns the stage names in application order.
	Rules() []string

	// Trace runs a single pass and records the output of every stage.
	Trace(markup string) []domain.RuleStep
}
