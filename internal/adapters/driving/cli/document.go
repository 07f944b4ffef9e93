package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage stored documents",
	Long:  `List, show, save, export, or delete stored documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [name-or-id]",
	Short: "Print a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentSaveCmd = &cobra.Command{
	Use:   "save [name] [file]",
	Short: "Normalise and store a document",
	Long: `Store HTML from a file or standard input under a name.

The markup is normalised before it is stored. Saving an existing name
replaces that document's content.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDocumentSave,
}

var documentExportCmd = &cobra.Command{
	Use:   "export [name-or-id]",
	Short: "Export a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentExport,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [name-or-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentShowCmd.Flags().Bool("info", false, "Print metadata instead of content")
	documentExportCmd.Flags().StringP("format", "f", "markdown", "Export format")
	documentExportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentSaveCmd)
	documentCmd.AddCommand(documentExportCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errDocumentsNotConfigured
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	cmd.Printf("%-24s %-36s %-16s %s\n", "NAME", "ID", "REVISION", "UPDATED")
	for i := range docs {
		doc := &docs[i]
		cmd.Printf("%-24s %-36s %-16s %s\n",
			doc.Name, doc.ID, doc.Revision, doc.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	doc, err := resolveDocument(cmd, args[0])
	if err != nil {
		return err
	}

	info, _ := cmd.Flags().GetBool("info")
	if !info {
		fmt.Fprintln(cmd.OutOrStdout(), doc.Content)
		return nil
	}

	cmd.Printf("Name:     %s\n", doc.Name)
	cmd.Printf("ID:       %s\n", doc.ID)
	cmd.Printf("Revision: %s\n", doc.Revision)
	cmd.Printf("Size:     %d bytes\n", len(doc.Content))
	cmd.Printf("Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runDocumentSave(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentsNotConfigured
	}

	content, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}

	doc, err := documentService.Save(cmd.Context(), args[0], content)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	cmd.Printf("Saved %s (revision %s)\n", doc.Name, doc.Revision)
	return nil
}

func runDocumentExport(cmd *cobra.Command, args []string) error {
	doc, err := resolveDocument(cmd, args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	data, err := documentService.Export(cmd.Context(), doc.ID, format)
	if errors.Is(err, domain.ErrUnsupportedFormat) {
		return fmt.Errorf("unsupported format %q (available: %s)",
			format, strings.Join(documentService.Formats(), ", "))
	}
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	cmd.Printf("Exported %s to %s\n", doc.Name, output)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	doc, err := resolveDocument(cmd, args[0])
	if err != nil {
		return err
	}

	if err := documentService.Delete(cmd.Context(), doc.ID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	cmd.Printf("Deleted %s\n", doc.Name)
	return nil
}

func resolveDocument(cmd *cobra.Command, ref string) (*domain.StoredDocument, error) {
	if documentService == nil {
		return nil, errDocumentsNotConfigured
	}
	doc, err := documentService.Resolve(cmd.Context(), ref)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("document %q not found", ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}
