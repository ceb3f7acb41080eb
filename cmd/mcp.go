package cmd

import (
	"github.com/gbb-community/showcase/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Showcase MCP server",
	Long:  `Launch an MCP server that allows AI agents to query the catalog via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// This reuses the shared setup so the server inherits the same
		// validated configuration as the CLI commands. Logs go to stderr
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
