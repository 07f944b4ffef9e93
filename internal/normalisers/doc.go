// Package normalisers provides implementations of the Normaliser port.
// A normaliser rewrites the markup read back from a rendering surface into
// the canonical form stored as the editor's document.
package normalisers
