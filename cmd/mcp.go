package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/traindelay/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the dashboard pages as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, ds, err := newRenderer(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer ds.Close()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "traindelay MCP server started on stdio (dataset=%s, records=%d)\n", ds.Source(), ds.Len())

		return mcpserver.NewServer(renderer).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
