package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Starts a Model Context Protocol server exposing search_activity,
ask_team, and get_team_stats tools for AI agents. Protocol messages
use stdout; logging goes to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		engine, err := newEngine(cfg, store)
		if err != nil {
			return err
		}

		srv := mcp.NewServer(store, engine, reportPath(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
