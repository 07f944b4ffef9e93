package domain

// RuleStep is the output of one normalisation rule, as reported by a trace.
type RuleStep struct {
	// Rule is the stage name.
	Rule string

	// Output is the markup after the stage ran.
	Output string
}

// Changed reports whether the stage rewrote its input.
func (s RuleStep) Changed(input string) bool {
	return s.Output != input
}
