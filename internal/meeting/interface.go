package meeting

import (
	"context"

	"meetbot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Free-text operations
	Handle(ctx context.Context, text string) (Outcome, error)
	Schedule(ctx context.Context, input ScheduleInput) (Outcome, error)
	Cancel(ctx context.Context, input CancelInput) (Outcome, error)
	List(ctx context.Context, input ListInput) (Outcome, error)

	// Structured lookups
	Detail(ctx context.Context, id int64) (model.Meeting, error)
	FreeSlots(ctx context.Context, date string) (FreeSlotsOutput, error)
	Export(ctx context.Context, input ListInput) ([]byte, error)
}

// Hook is told about committed changes. Failures are logged by the caller and never undo the change.
type Hook interface {
	Name() string
	MeetingScheduled(ctx context.Context, m model.Meeting) error
	MeetingCancelled(ctx context.Context, m model.Meeting) error
}

// Recorder counts outcomes per intent and status.
type Recorder interface {
	ObserveOutcome(intent, status string)
}
