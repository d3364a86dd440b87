package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

// errNotSuccessful makes the process exit non-zero after the outcome was printed.
var errNotSuccessful = errors.New("request did not succeed")

func newAskCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "ask <request...>",
		Short: "Run a free-text request",
		Example: `  meetbot ask schedule tomorrow 3 to 4 for project review
  meetbot ask cancel meeting 5
  meetbot ask show meetings next friday`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(a *app.App, _ *config.Config, _ log.Logger) error {
				return runAsk(cmd.Context(), a.Meetings, cmd.OutOrStdout(), strings.Join(args, " "), strict)
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the outcome is not a success")
	return cmd
}

func runAsk(ctx context.Context, uc meeting.UseCase, w io.Writer, text string, strict bool) error {
	out, err := uc.Handle(ctx, text)
	if err != nil {
		return err
	}
	if err := printJSON(w, meeting.NewOutcomeView(out)); err != nil {
		return err
	}
	if strict && out.Status() != meeting.StatusSuccess {
		return errNotSuccessful
	}
	return nil
}
