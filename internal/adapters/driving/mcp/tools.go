package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NormalizeInput is the input schema for the normalize_html tool.
type NormalizeInput struct {
	Markup  string `json:"markup" jsonschema:"the HTML fragment to normalise"`
	Explain bool   `json:"explain,omitempty" jsonschema:"also return the output of every normalisation rule"`
}

// NormalizeOutput is the output schema for the normalize_html tool.
type NormalizeOutput struct {
	Content   string     `json:"content"`
	Canonical bool       `json:"canonical"`
	Steps     []RuleStep `json:"steps,omitempty"`
}

// RuleStep is one rule of an explained normalisation.
type RuleStep struct {
	Rule    string `json:"rule"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

// SaveDocumentInput is the input schema for the save_document tool.
type SaveDocumentInput struct {
	Name    string `json:"name" jsonschema:"the document name; an existing name is overwritten"`
	Content string `json:"content" jsonschema:"the HTML content, normalised before it is stored"`
}

// ExportDocumentInput is the input schema for the export_document tool.
type ExportDocumentInput struct {
	Document string `json:"document" jsonschema:"the document ID or name"`
	Format   string `json:"format,omitempty" jsonschema:"html, markdown, text or outline (default markdown)"`
}

// ExportDocumentOutput is the output schema for the export_document tool.
type ExportDocumentOutput struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_html",
		Description: "Rewrite an HTML fragment into canonical markup",
	}, s.handleNormalize)

	if s.ports.Documents == nil {
		return
	}
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_document",
		Description: "Normalise HTML and store it as a named document",
	}, s.handleSaveDocument)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_document",
		Description: "Render a stored document as HTML, Markdown, plain text or a heading outline",
	}, s.handleExportDocument)
}

// handleNormalize handles the normalize_html tool invocation.
func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	content, ok := s.ports.Normalise.Check(input.Markup)
	output := NormalizeOutput{Content: content, Canonical: ok}

	if input.Explain {
		prev := input.Markup
		for _, step := range s.ports.Normalise.Explain(input.Markup) {
			output.Steps = append(output.Steps, RuleStep{
				Rule:    step.Rule,
				Output:  step.Output,
				Changed: step.Changed(prev),
			})
			prev = step.Output
		}
	}

	return nil, output, nil
}

// handleSaveDocument handles the save_document tool invocation.
func (s *Server) handleSaveDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveDocumentInput,
) (*mcp.CallToolResult, DocumentInfo, error) {
	if s.ports.Documents == nil {
		return nil, DocumentInfo{}, ErrMissingDocumentService
	}

	doc, err := s.ports.Documents.Save(ctx, input.Name, input.Content)
	if err != nil {
		return nil, DocumentInfo{}, err
	}
	return nil, toInfo(doc), nil
}

// handleExportDocument handles the export_document tool invocation.
func (s *Server) handleExportDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportDocumentInput,
) (*mcp.CallToolResult, ExportDocumentOutput, error) {
	if s.ports.Documents == nil {
		return nil, ExportDocumentOutput{}, ErrMissingDocumentService
	}

	format := input.Format
	if format == "" {
		format = "markdown"
	}
	doc, err := s.ports.Documents.Resolve(ctx, input.Document)
	if err != nil {
		return nil, ExportDocumentOutput{}, err
	}
	data, err := s.ports.Documents.Export(ctx, doc.ID, format)
	if err != nil {
		return nil, ExportDocumentOutput{}, err
	}
	return nil, ExportDocumentOutput{Format: format, Content: string(data)}, nil
}
