package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"meetbot/internal/meeting"
	"meetbot/internal/model"
	"meetbot/pkg/icalendar"
)

// Detail returns one meeting by id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Meeting, error) {
	if id <= 0 {
		return model.Meeting{}, meeting.ErrInvalidID
	}
	m, err := uc.repo.GetMeeting(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetMeeting: %v", err)
		return model.Meeting{}, err
	}
	if m.IsZero() {
		return model.Meeting{}, meeting.ErrMeetingNotFound
	}
	return m, nil
}

// FreeSlots lists the free working-hours slots of date, given as
// YYYY-MM-DD or any expression the extractor understands ("tomorrow").
func (uc *implUseCase) FreeSlots(ctx context.Context, date string) (meeting.FreeSlotsOutput, error) {
	resolved, err := uc.extractor.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return meeting.FreeSlotsOutput{}, fmt.Errorf("%w: %v", meeting.ErrInvalidDate, err)
	}

	slots, err := uc.engine.FreeSlots(ctx, dateSource{repo: uc.repo}, resolved)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FreeSlots: %v", err)
		return meeting.FreeSlotsOutput{}, err
	}
	return meeting.FreeSlotsOutput{Date: resolved, Window: uc.engine.Window(), Slots: slots}, nil
}

// Export renders the listed meetings as an iCalendar document.
func (uc *implUseCase) Export(ctx context.Context, input meeting.ListInput) ([]byte, error) {
	if strings.TrimSpace(input.Date) == "" && strings.TrimSpace(input.Text) == "" {
		input.Text = "all"
	}
	out, err := uc.List(ctx, input)
	if err != nil {
		return nil, err
	}
	if out.Kind == meeting.OutcomeRejected {
		return nil, fmt.Errorf("%w: %v", meeting.ErrInvalidDate, out.ParseError)
	}
	if len(out.Meetings) == 0 {
		return nil, meeting.ErrMeetingNotFound
	}

	events := make([]icalendar.Event, 0, len(out.Meetings))
	for _, m := range out.Meetings {
		start, err := m.Start(time.UTC)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Export meeting %d start: %v", m.ID, err)
			return nil, err
		}
		end, err := m.End(time.UTC)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Export meeting %d end: %v", m.ID, err)
			return nil, err
		}
		events = append(events, icalendar.Event{
			UID:         fmt.Sprintf("meeting-%d@meetbot", m.ID),
			Summary:     m.Title,
			Description: m.Description,
			Location:    m.Location,
			Start:       start,
			End:         end,
		})
	}

	var buf bytes.Buffer
	if err := icalendar.Encode(&buf, uc.prodID, uc.now(), events); err != nil {
		uc.l.Errorf(ctx, "uc.Export Encode: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}
