package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/mcp"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  count_tags      count tags in text passed by the client
  scan_documents  scan a document or folder with the configured mapping

By default, the server communicates over stdio using JSON-RPC.
Use --port to start a streamable HTTP server instead.

Examples:
  # Stdio mode (default)
  cardscan mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  cardscan mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "cardscan": {
        "command": "/path/to/cardscan",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Targets and mappings may come from tool calls, credentials cannot.
	if cfg.CredentialsFile == "" {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, domain.ErrMissingCredentials)
	}

	svc, err := newScanner(cmd, cfg, log)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Scan: svc, Defaults: cfg})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
