package usecase

import (
	"context"
	"errors"
	"strings"

	"meetbot/internal/extractor"
	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
)

// dateSource feeds the availability engine from a (possibly tx-bound) repository.
type dateSource struct {
	repo repository.MeetingRepository
}

func (s dateSource) MeetingsOn(ctx context.Context, date string) ([]model.Meeting, error) {
	return s.repo.ListMeetings(ctx, repository.ListMeetingsOptions{Date: date})
}

func dedupKey(date, start, end, title string) string {
	return strings.Join([]string{date, start, end, strings.ToLower(strings.TrimSpace(title))}, "|")
}

// rejected turns a parse failure into an outcome. Other errors pass through.
func rejected(intent string, err error) (meeting.Outcome, bool) {
	var perr *extractor.ParseError
	if !errors.As(err, &perr) {
		return meeting.Outcome{}, false
	}
	return meeting.Outcome{Kind: meeting.OutcomeRejected, Intent: intent, ParseError: perr}, true
}

func (uc *implUseCase) notifyScheduled(ctx context.Context, m model.Meeting) {
	for _, h := range uc.hooks {
		if err := h.MeetingScheduled(ctx, m); err != nil {
			uc.l.Warnf(ctx, "uc.notifyScheduled %s: meeting %d: %v", h.Name(), m.ID, err)
		}
	}
}

func (uc *implUseCase) notifyCancelled(ctx context.Context, m model.Meeting) {
	for _, h := range uc.hooks {
		if err := h.MeetingCancelled(ctx, m); err != nil {
			uc.l.Warnf(ctx, "uc.notifyCancelled %s: meeting %d: %v", h.Name(), m.ID, err)
		}
	}
}

func (uc *implUseCase) observe(out meeting.Outcome) meeting.Outcome {
	if uc.recorder != nil {
		uc.recorder.ObserveOutcome(out.Intent, out.Status())
	}
	return out
}
