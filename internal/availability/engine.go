package availability

import (
	"context"
	"fmt"
)

// Engine answers conflict and free-slot questions against a meeting source.
type Engine struct {
	window Window
}

// New returns an Engine for the given working-hours window.
func New(w Window) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Engine{window: w}, nil
}

// Window returns the configured working hours.
func (e *Engine) Window() Window {
	return e.window
}

// Check loads the meetings of date from src and reports whether candidate
// collides with any. On a conflict the free slots of that date are returned too.
func (e *Engine) Check(ctx context.Context, src IntervalSource, date string, candidate Interval) (bool, []Interval, error) {
	meetings, err := src.MeetingsOn(ctx, date)
	if err != nil {
		return false, nil, fmt.Errorf("availability.Check: %w", err)
	}
	existing := FromMeetings(meetings)
	if conflict, _ := HasConflict(candidate, existing); !conflict {
		return false, nil, nil
	}
	return true, AvailableSlots(existing, e.window), nil
}

// FreeSlots returns the free slots of date.
func (e *Engine) FreeSlots(ctx context.Context, src IntervalSource, date string) ([]Interval, error) {
	meetings, err := src.MeetingsOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("availability.FreeSlots: %w", err)
	}
	return AvailableSlots(FromMeetings(meetings), e.window), nil
}
