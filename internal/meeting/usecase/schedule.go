package usecase

import (
	"context"

	"meetbot/internal/availability"
	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
	"meetbot/internal/router"
)

// Schedule books the meeting described by input.Text unless it overlaps an
// existing one on the same date.
func (uc *implUseCase) Schedule(ctx context.Context, input meeting.ScheduleInput) (meeting.Outcome, error) {
	intent := string(router.IntentSchedule)

	req, err := uc.extractor.ParseSchedule(input.Text)
	if err != nil {
		if out, ok := rejected(intent, err); ok {
			return uc.observe(out), nil
		}
		uc.l.Errorf(ctx, "uc.Schedule ParseSchedule: %v", err)
		return meeting.Outcome{}, err
	}
	if input.Description != "" {
		req.Description = input.Description
	}
	if input.Location != "" {
		req.Location = input.Location
	}

	key := dedupKey(req.Date, req.StartTime, req.EndTime, req.Title)
	if out, ok, err := uc.recentlyScheduled(ctx, key); err != nil {
		return meeting.Outcome{}, err
	} else if ok {
		return uc.observe(out), nil
	}

	candidate := availability.Interval{Start: req.StartTime, End: req.EndTime}
	out := meeting.Outcome{Intent: intent}

	err = uc.repo.WithinDateLock(ctx, req.Date, func(ctx context.Context, tx repository.MeetingRepository) error {
		conflict, slots, err := uc.engine.Check(ctx, dateSource{repo: tx}, req.Date, candidate)
		if err != nil {
			return err
		}
		if conflict {
			out.Kind = meeting.OutcomeConflict
			out.Requested = meeting.RequestedSlot{
				Date:      req.Date,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
				Title:     req.Title,
			}
			out.AvailableSlots = slots
			out.FittingSlots = availability.FitSlots(slots, candidate.Minutes())
			return nil
		}

		m, err := tx.CreateMeeting(ctx, repository.CreateMeetingOptions{
			Date:        req.Date,
			Title:       req.Title,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Description: req.Description,
			Location:    req.Location,
		})
		if err != nil {
			return err
		}
		out.Kind = meeting.OutcomeScheduled
		out.Meeting = m
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule WithinDateLock: %v", err)
		return meeting.Outcome{}, err
	}

	if out.Kind == meeting.OutcomeScheduled {
		if uc.recent != nil {
			uc.recent.Add(key, out.Meeting.ID)
		}
		uc.l.Infof(ctx, "uc.Schedule: meeting %d %q on %s %s-%s", out.Meeting.ID, out.Meeting.Title, out.Meeting.Date, out.Meeting.StartTime, out.Meeting.EndTime)
		uc.notifyScheduled(ctx, out.Meeting)
	}
	return uc.observe(out), nil
}

// recentlyScheduled returns the Scheduled outcome of an identical request
// still inside the dedup window, if its meeting still exists.
func (uc *implUseCase) recentlyScheduled(ctx context.Context, key string) (meeting.Outcome, bool, error) {
	if uc.recent == nil {
		return meeting.Outcome{}, false, nil
	}
	id, ok := uc.recent.Get(key)
	if !ok {
		return meeting.Outcome{}, false, nil
	}

	m, err := uc.repo.GetMeeting(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule GetMeeting: %v", err)
		return meeting.Outcome{}, false, err
	}
	if m.IsZero() {
		uc.recent.Remove(key)
		return meeting.Outcome{}, false, nil
	}

	return meeting.Outcome{
		Kind:      meeting.OutcomeScheduled,
		Intent:    string(router.IntentSchedule),
		Meeting:   m,
		Duplicate: true,
	}, true, nil
}

func (uc *implUseCase) forget(m model.Meeting) {
	if uc.recent != nil {
		uc.recent.Remove(dedupKey(m.Date, m.StartTime, m.EndTime, m.Title))
	}
}
