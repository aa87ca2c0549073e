package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	aglmcp "github.com/valter-silva-au/agent-gallery/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the agent gallery MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery MCP server on stdio",
	Long: `Start the gallery MCP server on stdio transport.

The server exposes the catalog as MCP tools that AI coding assistants can
call: list_agents, get_agent, list_tags, list_domains, export_agent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}

		srv := aglmcp.NewServer(Catalog, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
