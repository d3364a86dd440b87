package usecase

import (
	"context"
	"strings"

	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/router"
)

// List returns the meetings of one date, or of every date.
func (uc *implUseCase) List(ctx context.Context, input meeting.ListInput) (meeting.Outcome, error) {
	intent := string(router.IntentList)

	date, err := uc.listDate(input)
	if err != nil {
		if out, ok := rejected(intent, err); ok {
			return uc.observe(out), nil
		}
		return meeting.Outcome{}, err
	}

	ms, err := uc.repo.ListMeetings(ctx, repository.ListMeetingsOptions{Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMeetings: %v", err)
		return meeting.Outcome{}, err
	}

	return uc.observe(meeting.Outcome{
		Kind:     meeting.OutcomeListed,
		Intent:   intent,
		Date:     date,
		Meetings: ms,
	}), nil
}

// listDate resolves an explicit date first, then the free text.
func (uc *implUseCase) listDate(input meeting.ListInput) (string, error) {
	if d := strings.TrimSpace(input.Date); d != "" {
		return uc.extractor.ParseDate(d)
	}
	req, err := uc.extractor.ParseList(input.Text)
	if err != nil {
		return "", err
	}
	return req.Date, nil
}
