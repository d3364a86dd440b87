package main

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	mcpDelivery "meetbot/internal/meeting/delivery/mcp"
	"meetbot/pkg/log"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the meeting tools over MCP stdio",
		Long: `Start an MCP server on stdin/stdout exposing schedule_meeting,
cancel_meeting, get_calendar_meetings, find_free_slots, export_meetings and
meeting_assistant. Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(a *app.App, cfg *config.Config, l log.Logger) error {
				version := cfg.MCP.Version
				if version == "" {
					version = rootCmd.Version
				}
				srv := mcpDelivery.NewServer(cfg.MCP.Name, version, mcpDelivery.New(l, a.Meetings))

				l.Infof(cmd.Context(), "MCP server %s %s on stdio", cfg.MCP.Name, version)
				if err := mcpserver.ServeStdio(srv); err != nil {
					return fmt.Errorf("server stopped with error: %w", err)
				}
				return nil
			})
		},
	}
}
