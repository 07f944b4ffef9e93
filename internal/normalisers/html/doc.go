// Package html provides the canonical HTML Normaliser.
//
// The normaliser does not build a tree. It applies a fixed, ordered list of
// textual rewrite rules to markup produced by browser editing engines:
//
//  1. vendor artefact stripping (WebKit placeholders and Apple-style-span)
//  2. empty paragraph normalisation
//  3. <br> canonicalisation
//  4. boundary <br> trimming
//  5. redundant <br> removal after an opening tag
//  6. <br> removal before block closers
//  7. empty element pruning
//  8. semantic tag promotion (<b> to <strong>, <i> to <em>, styled spans)
//  9. tag name case folding
//  10. attribute name case folding
//  11. attribute value quoting
//  12. trimming
//
// Later rules depend on the output of earlier ones. The whole list is
// re-applied until the output is stable, so Normalise is idempotent.
//
// Malformed markup never causes an error: a rule whose pattern does not
// match leaves the input untouched.
package html
