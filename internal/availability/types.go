package availability

import (
	"context"
	"fmt"
	"time"

	"meetbot/internal/model"
)

// Interval is a half-open [Start, End) span of HH:MM wall-clock times.
// Zero-padded HH:MM strings order lexicographically as they do chronologically.
type Interval struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Minutes returns the interval length.
func (iv Interval) Minutes() int {
	s, err1 := time.Parse(model.TimeLayout, iv.Start)
	e, err2 := time.Parse(model.TimeLayout, iv.End)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s) / time.Minute)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", iv.Start, iv.End)
}

// Window is the working-hours span free slots are computed within.
type Window struct {
	Start string
	End   string
}

// DefaultWindow is 09:00-18:00.
var DefaultWindow = Window{Start: "09:00", End: "18:00"}

// Validate checks both bounds are HH:MM and Start < End.
func (w Window) Validate() error {
	for _, v := range []string{w.Start, w.End} {
		if _, err := time.Parse(model.TimeLayout, v); err != nil || len(v) != len(model.TimeLayout) {
			return fmt.Errorf("invalid window bound %q", v)
		}
	}
	if w.Start >= w.End {
		return fmt.Errorf("window start %s is not before end %s", w.Start, w.End)
	}
	return nil
}

// IntervalSource yields the booked meetings of one date.
type IntervalSource interface {
	MeetingsOn(ctx context.Context, date string) ([]model.Meeting, error)
}

// FromMeetings projects meetings onto their intervals.
func FromMeetings(meetings []model.Meeting) []Interval {
	out := make([]Interval, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, Interval{Start: m.StartTime, End: m.EndTime})
	}
	return out
}
