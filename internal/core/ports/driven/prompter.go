package driven

// Prompter collects input from the user for commands that need it.
// Implementations may be blocking dialogs or pre-answered adapters.
type Prompter interface {
	// Prompt asks message, pre-filled with defaultValue.
	// A dismissed prompt returns domain.ErrUserCancelled; an accepted empty
	// answer returns "" and a nil error.
	Prompt(message, defaultValue string) (string, error)

	// Alert shows a blocking notice.
	Alert(message string)
}
