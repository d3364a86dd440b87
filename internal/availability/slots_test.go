package availability_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/availability"
	"meetbot/internal/model"
)

func iv(s, e string) availability.Interval { return availability.Interval{Start: s, End: e} }

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b availability.Interval
		want bool
	}{
		{name: "identical", a: iv("10:00", "11:00"), b: iv("10:00", "11:00"), want: true},
		{name: "partial", a: iv("10:00", "11:00"), b: iv("10:30", "11:30"), want: true},
		{name: "contained", a: iv("10:00", "12:00"), b: iv("10:30", "11:00"), want: true},
		{name: "back to back", a: iv("10:00", "11:00"), b: iv("11:00", "12:00"), want: false},
		{name: "back to back reversed", a: iv("11:00", "12:00"), b: iv("10:00", "11:00"), want: false},
		{name: "disjoint", a: iv("08:00", "09:00"), b: iv("13:00", "14:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, availability.Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	t.Parallel()
	w := availability.DefaultWindow

	tests := []struct {
		name     string
		existing []availability.Interval
		want     []availability.Interval
	}{
		{name: "no meetings", existing: nil, want: []availability.Interval{iv("09:00", "18:00")}},
		{name: "whole window booked", existing: []availability.Interval{iv("09:00", "18:00")}, want: nil},
		{
			name:     "one afternoon meeting",
			existing: []availability.Interval{iv("15:00", "16:00")},
			want:     []availability.Interval{iv("09:00", "15:00"), iv("16:00", "18:00")},
		},
		{
			name:     "unsorted and overlapping",
			existing: []availability.Interval{iv("13:00", "14:00"), iv("10:00", "11:30"), iv("11:00", "12:00")},
			want:     []availability.Interval{iv("09:00", "10:00"), iv("12:00", "13:00"), iv("14:00", "18:00")},
		},
		{
			name:     "meetings outside working hours are clipped",
			existing: []availability.Interval{iv("07:00", "09:30"), iv("17:30", "20:00")},
			want:     []availability.Interval{iv("09:30", "17:30")},
		},
		{
			name:     "back to back meetings leave no gap",
			existing: []availability.Interval{iv("09:00", "10:00"), iv("10:00", "11:00")},
			want:     []availability.Interval{iv("11:00", "18:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.AvailableSlots(tt.existing, w)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableSlotsProperties(t *testing.T) {
	t.Parallel()
	w := availability.DefaultWindow
	r := rand.New(rand.NewSource(42))

	hhmm := func(min int) string { return fmt.Sprintf("%02d:%02d", min/60, min%60) }

	for run := 0; run < 200; run++ {
		var existing []availability.Interval
		n := r.Intn(6)
		for i := 0; i < n; i++ {
			start := 6*60 + r.Intn(14*60)
			end := start + 15 + r.Intn(180)
			if end >= 24*60 {
				end = 24*60 - 1
			}
			existing = append(existing, iv(hhmm(start), hhmm(end)))
		}

		slots := availability.AvailableSlots(existing, w)
		for i, s := range slots {
			require.Less(t, s.Start, s.End, "slot must be non-empty")
			require.GreaterOrEqual(t, s.Start, w.Start)
			require.LessOrEqual(t, s.End, w.End)
			if i > 0 {
				require.Less(t, slots[i-1].End, s.Start, "slots must be sorted and disjoint")
			}
			for _, e := range existing {
				require.False(t, availability.Overlaps(s, e), "slot %v overlaps meeting %v", s, e)
			}
		}
	}
}

func TestFitSlots(t *testing.T) {
	slots := []availability.Interval{iv("09:00", "09:30"), iv("12:00", "13:00")}
	assert.Equal(t, []availability.Interval{iv("12:00", "13:00")}, availability.FitSlots(slots, 45))
	assert.Equal(t, 30, iv("09:00", "09:30").Minutes())
}

func TestWindowValidate(t *testing.T) {
	assert.NoError(t, availability.DefaultWindow.Validate())
	assert.Error(t, availability.Window{Start: "18:00", End: "09:00"}.Validate())
	assert.Error(t, availability.Window{Start: "9:00", End: "18:00"}.Validate())
	_, err := availability.New(availability.Window{Start: "x", End: "18:00"})
	assert.Error(t, err)
}

type fakeSource struct {
	meetings []model.Meeting
	err      error
}

func (f fakeSource) MeetingsOn(_ context.Context, date string) ([]model.Meeting, error) {
	var out []model.Meeting
	for _, m := range f.meetings {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, f.err
}

func TestEngineCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	eng, err := availability.New(availability.DefaultWindow)
	require.NoError(t, err)

	src := fakeSource{meetings: []model.Meeting{
		{ID: 1, Date: "2026-02-04", Title: "Project review", StartTime: "15:00", EndTime: "16:00"},
	}}

	conflict, slots, err := eng.Check(ctx, src, "2026-02-04", iv("15:30", "16:30"))
	require.NoError(t, err)
	assert.True(t, conflict)
	assert.Contains(t, slots, iv("09:00", "15:00"))
	assert.Contains(t, slots, iv("16:00", "18:00"))

	conflict, slots, err = eng.Check(ctx, src, "2026-02-04", iv("16:00", "17:00"))
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Nil(t, slots)

	conflict, _, err = eng.Check(ctx, src, "2026-02-05", iv("15:30", "16:30"))
	require.NoError(t, err)
	assert.False(t, conflict, "meetings on other dates never conflict")

	_, _, err = eng.Check(ctx, fakeSource{err: errors.New("boom")}, "2026-02-04", iv("10:00", "11:00"))
	assert.Error(t, err)

	free, err := eng.FreeSlots(ctx, src, "2026-02-06")
	require.NoError(t, err)
	assert.Equal(t, []availability.Interval{iv("09:00", "18:00")}, free)
}
