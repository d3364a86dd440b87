package memory

import (
	"context"
	"sort"
	"strings"

	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
)

func (r *implRepository) CreateMeeting(ctx context.Context, opt repository.CreateMeetingOptions) (model.Meeting, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMeeting"), err)
		return model.Meeting{}, repository.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	m := model.Meeting{
		ID:          r.seq,
		Date:        opt.Date,
		Title:       opt.Title,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Description: opt.Description,
		Location:    opt.Location,
		CreatedAt:   r.now().UTC(),
	}
	r.meetings[m.ID] = m
	return m, nil
}

func (r *implRepository) GetMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.meetings[id], nil
}

func (r *implRepository) ListMeetings(ctx context.Context, opt repository.ListMeetingsOptions) ([]model.Meeting, error) {
	return r.filter(func(m model.Meeting) bool {
		return opt.Date == "" || m.Date == opt.Date
	}), nil
}

func (r *implRepository) FindMeetings(ctx context.Context, opt repository.FindMeetingsOptions) ([]model.Meeting, error) {
	fragment := strings.ToLower(opt.TitleFragment)
	return r.filter(func(m model.Meeting) bool {
		if opt.Date != "" && m.Date != opt.Date {
			return false
		}
		return strings.Contains(strings.ToLower(m.Title), fragment)
	}), nil
}

func (r *implRepository) DeleteMeeting(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return false, nil
	}
	delete(r.meetings, id)
	return true, nil
}

func (r *implRepository) WithinDateLock(ctx context.Context, date string, fn func(ctx context.Context, tx repository.MeetingRepository) error) error {
	r.writer.Lock()
	defer r.writer.Unlock()

	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WithinDateLock"), err)
		return repository.ErrFailedToLock
	}
	return fn(ctx, r)
}

// filter returns matching meetings ordered by (date, start_time, id).
func (r *implRepository) filter(keep func(model.Meeting) bool) []model.Meeting {
	r.mu.RLock()
	out := make([]model.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		if keep(m) {
			out = append(out, m)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
