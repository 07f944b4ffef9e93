// Package export converts canonical editor markup into other formats.
//
// Markdown conversion uses html-to-markdown; plain text and outline
// extraction walk the markup with goquery.
package export
