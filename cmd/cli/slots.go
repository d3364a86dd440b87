package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

func newSlotsCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:     "slots <date>",
		Short:   "Show free working-hours slots of a date",
		Example: `  meetbot slots tomorrow --min 45`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(a *app.App, _ *config.Config, _ log.Logger) error {
				return runSlots(cmd.Context(), a.Meetings, cmd.OutOrStdout(), strings.Join(args, " "), minutes)
			})
		},
	}

	cmd.Flags().IntVar(&minutes, "min", 0, "Only show slots at least this many minutes long")
	return cmd
}

func runSlots(ctx context.Context, uc meeting.UseCase, w io.Writer, date string, minutes int) error {
	out, err := uc.FreeSlots(ctx, date)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s (working hours %s-%s)\n", out.Date, out.Window.Start, out.Window.End); err != nil {
		return err
	}
	shown := 0
	for _, s := range out.Slots {
		if s.Minutes() < minutes {
			continue
		}
		shown++
		if _, err := fmt.Fprintf(w, "  %s  %d min\n", s, s.Minutes()); err != nil {
			return err
		}
	}
	if shown == 0 {
		_, err := fmt.Fprintln(w, "  no free slot")
		return err
	}
	return nil
}
