package usecase

import (
	"context"

	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
	"meetbot/internal/router"
)

// Cancel deletes the single meeting input.Text points at. Several matches
// delete nothing and come back as candidates.
func (uc *implUseCase) Cancel(ctx context.Context, input meeting.CancelInput) (meeting.Outcome, error) {
	intent := string(router.IntentCancel)

	req, err := uc.extractor.ParseCancel(input.Text)
	if err != nil {
		if out, ok := rejected(intent, err); ok {
			return uc.observe(out), nil
		}
		uc.l.Errorf(ctx, "uc.Cancel ParseCancel: %v", err)
		return meeting.Outcome{}, err
	}

	var candidates []model.Meeting
	if req.ByID() {
		m, err := uc.repo.GetMeeting(ctx, req.MeetingID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Cancel GetMeeting: %v", err)
			return meeting.Outcome{}, err
		}
		if !m.IsZero() {
			candidates = append(candidates, m)
		}
	} else {
		candidates, err = uc.repo.FindMeetings(ctx, repository.FindMeetingsOptions{
			TitleFragment: req.TitleFragment,
			Date:          req.Date,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Cancel FindMeetings: %v", err)
			return meeting.Outcome{}, err
		}
	}

	switch len(candidates) {
	case 0:
		return uc.observe(meeting.Outcome{Kind: meeting.OutcomeNotFound, Intent: intent}), nil
	case 1:
	default:
		return uc.observe(meeting.Outcome{Kind: meeting.OutcomeAmbiguous, Intent: intent, Candidates: candidates}), nil
	}

	target := candidates[0]
	var deleted bool
	err = uc.repo.WithinDateLock(ctx, target.Date, func(ctx context.Context, tx repository.MeetingRepository) error {
		var err error
		deleted, err = tx.DeleteMeeting(ctx, target.ID)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel WithinDateLock: %v", err)
		return meeting.Outcome{}, err
	}
	if !deleted {
		// Removed by someone else between lookup and lock.
		return uc.observe(meeting.Outcome{Kind: meeting.OutcomeNotFound, Intent: intent}), nil
	}

	uc.forget(target)
	uc.l.Infof(ctx, "uc.Cancel: meeting %d %q removed", target.ID, target.Title)
	uc.notifyCancelled(ctx, target)
	return uc.observe(meeting.Outcome{Kind: meeting.OutcomeCancelled, Intent: intent, Meeting: target}), nil
}
