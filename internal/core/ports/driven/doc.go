// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for an editor to function:
//
//   - Normaliser: Rewrites surface markup into canonical HTML
//   - RenderedSurface: The live, formatted editing view
//   - PlainSurface: The raw-text view of the same content
//   - Prompter: User input for link, image and colour commands
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentStore: Persistence of submitted documents.
//   - Exporter: Conversion of canonical markup to other formats.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
