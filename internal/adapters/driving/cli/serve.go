package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/editable/internal/adapters/driving/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the normaliser and documents over HTTP",
	Long: `Start an HTTP server. Submitted forms are normalised server-side.

Routes:
  GET    /health
  POST   /normalize                 form field "content", or a raw body
  GET    /commands
  GET    /documents
  POST   /documents                 form fields "name" and "content"
  GET    /documents/{id}
  GET    /documents/{id}/export     ?format=html|markdown|text|outline
  DELETE /documents/{id}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}

	server, err := api.NewServer(&api.Ports{
		Normalise: normaliseService,
		Documents: documentService,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Listening on http://%s\n", addr)
	return server.Run(cmd.Context(), addr)
}
