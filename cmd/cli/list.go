package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [date]",
		Short: "List meetings of a date, or of every date",
		Example: `  meetbot list
  meetbot list tomorrow
  meetbot list 2026-02-05`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(a *app.App, _ *config.Config, _ log.Logger) error {
				return runList(cmd.Context(), a.Meetings, cmd.OutOrStdout(), strings.Join(args, " "))
			})
		},
	}
}

func runList(ctx context.Context, uc meeting.UseCase, w io.Writer, date string) error {
	input := meeting.ListInput{Date: date}
	if strings.TrimSpace(date) == "" {
		input.Text = "all"
	}
	out, err := uc.List(ctx, input)
	if err != nil {
		return err
	}
	return printJSON(w, meeting.NewOutcomeView(out))
}
