package driven

// Exporter converts canonical markup into another representation.
type Exporter interface {
	// Format returns the format identifier (e.g. "markdown").
	Format() string

	// Extension returns the file extension for exported output.
	Extension() string

	// Export converts markup.
	Export(markup string) ([]byte, error)
}
