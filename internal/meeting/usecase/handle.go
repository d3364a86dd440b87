package usecase

import (
	"context"
	"strings"

	"meetbot/internal/extractor"
	"meetbot/internal/meeting"
	"meetbot/internal/router"
)

// Handle classifies text and runs the matching operation.
func (uc *implUseCase) Handle(ctx context.Context, text string) (meeting.Outcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return meeting.Outcome{}, meeting.ErrEmptyInput
	}

	route, err := uc.router.Classify(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Handle Classify: %v", err)
		return meeting.Outcome{}, err
	}

	switch route.Intent {
	case router.IntentSchedule:
		return uc.Schedule(ctx, meeting.ScheduleInput{Text: text})
	case router.IntentCancel:
		return uc.Cancel(ctx, meeting.CancelInput{Text: text})
	case router.IntentList:
		return uc.List(ctx, meeting.ListInput{Text: text})
	default:
		return uc.observe(meeting.Outcome{
			Kind:   meeting.OutcomeRejected,
			Intent: string(router.IntentUnknown),
			ParseError: &extractor.ParseError{
				Kind: extractor.KindUnrecognized,
				Text: text,
				Msg:  "could not tell whether to schedule, cancel or list meetings",
			},
		}), nil
	}
}
