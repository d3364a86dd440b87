package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [date]",
		Short: "Export meetings as iCalendar",
		Example: `  meetbot export > meetings.ics
  meetbot export tomorrow -o tomorrow.ics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(a *app.App, _ *config.Config, _ log.Logger) error {
				w := cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return runExport(cmd.Context(), a.Meetings, w, strings.Join(args, " "))
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func runExport(ctx context.Context, uc meeting.UseCase, w io.Writer, date string) error {
	body, err := uc.Export(ctx, meeting.ListInput{Date: date})
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}
