package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hambart471/caltrack/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server exposes tools for reading and updating the food log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Starting MCP server...")
		fmt.Println("   The server will communicate via stdio")
		fmt.Println("   Press Ctrl+C to stop")

		server := mcp.NewServer(store)
		if err := server.Start(context.Background()); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}
