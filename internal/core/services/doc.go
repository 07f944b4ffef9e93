// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Editor is the centre of the package: it owns the canonical
// document and keeps the rendered and plain surfaces in step with it.
//
// Services are pure Go with no CGO dependencies.
package services
