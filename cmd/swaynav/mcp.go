package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/swaynav/internal/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol server",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP server on stdio. Designed to be invoked by MCP clients.

Example:
  claude mcp add swaynav -- swaynav mcp serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			connect := func(ctx context.Context) (mcp.Session, error) {
				c, err := a.connect(ctx)
				if err != nil {
					return nil, err
				}
				return c, nil
			}
			server, err := mcp.NewServer(connect, a.logger)
			if err != nil {
				return failed(fmt.Errorf("failed to create MCP server: %w", err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx); err != nil && ctx.Err() == nil {
				return failed(fmt.Errorf("MCP server error: %w", err))
			}
			return nil
		},
	})
	return cmd
}
