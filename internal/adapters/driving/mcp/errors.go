// Package mcp provides an MCP (Model Context Protocol) server adapter for editable.
// It lets AI assistants normalise markup and read or store documents.
package mcp

import "errors"

// ErrMissingNormaliseService is returned when the normalise service is not provided.
var ErrMissingNormaliseService = errors.New("mcp: normalise service is required")

// ErrMissingDocumentService is returned by document tools when no store is configured.
var ErrMissingDocumentService = errors.New("mcp: document service is not configured")
