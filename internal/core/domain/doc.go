// Package domain defines the core business entities for editable.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Mode: which editing surface is authoritative (rendered or source)
//   - Command: a toolbar/dispatch entry and its tagged action kind
//   - EditorOptions: toolbar, button list, labels and engine flavour
//   - StoredDocument: a submitted, normalised document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
