package main

import (
	"os/signal"
	"syscall"

	trainingmcp "github.com/2beens/gymplan/internal/training/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the training tools over MCP (stdio)",
		Long: `Start a Model Context Protocol server on stdin/stdout.

AVAILABLE TOOLS:

  list_plans        All plans
  get_plan_tree     One plan with weeks, workouts and planned exercises
  get_next_workout  First planned workout not logged yet
  get_history       Logged workouts and sets
  list_exercises    The exercise library

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "gymplan": { "command": "gymplan", "args": ["mcp"] }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := trainingmcp.NewServer(a.service)
			err := server.Run(ctx, &mcp.StdioTransport{})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}

