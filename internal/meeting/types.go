package meeting

import (
	"meetbot/internal/availability"
	"meetbot/internal/extractor"
	"meetbot/internal/model"
)

// --- UseCase Inputs ---

type ScheduleInput struct {
	Text        string
	Description string
	Location    string
}

type CancelInput struct {
	Text string
}

// ListInput selects meetings by free text ("tomorrow", "all") or by an explicit
// Date, which wins when both are set.
type ListInput struct {
	Text string
	Date string
}

// --- UseCase Outputs ---

// OutcomeKind tags which variant an Outcome holds.
type OutcomeKind string

const (
	OutcomeScheduled OutcomeKind = "scheduled"
	OutcomeConflict  OutcomeKind = "conflict"
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeAmbiguous OutcomeKind = "awaiting_disambiguation"
	OutcomeNotFound  OutcomeKind = "not_found"
	OutcomeListed    OutcomeKind = "listed"
	OutcomeRejected  OutcomeKind = "rejected"
)

// Result statuses exposed to callers.
const (
	StatusSuccess   = "success"
	StatusConflict  = "conflict"
	StatusError     = "error"
	StatusAmbiguous = "ambiguous"
	StatusNotFound  = "not_found"
)

// Outcome is the result of a schedule, cancel or list request. Kind selects
// which of the remaining fields are meaningful:
//
//	Scheduled  Meeting, Duplicate
//	Conflict   Requested, AvailableSlots, FittingSlots
//	Cancelled  Meeting
//	Ambiguous  Candidates
//	NotFound   -
//	Listed     Date, Meetings
//	Rejected   ParseError
type Outcome struct {
	Kind   OutcomeKind
	Intent string

	Meeting   model.Meeting
	Duplicate bool

	Requested      RequestedSlot
	AvailableSlots []availability.Interval
	FittingSlots   []availability.Interval

	Candidates []model.Meeting

	Date     string
	Meetings []model.Meeting

	ParseError *extractor.ParseError
}

// RequestedSlot echoes the slot a conflicting request asked for.
type RequestedSlot struct {
	Date      string
	StartTime string
	EndTime   string
	Title     string
}

// Status maps the outcome onto the external status vocabulary.
func (o Outcome) Status() string {
	switch o.Kind {
	case OutcomeScheduled, OutcomeCancelled, OutcomeListed:
		return StatusSuccess
	case OutcomeConflict:
		return StatusConflict
	case OutcomeAmbiguous:
		return StatusAmbiguous
	case OutcomeNotFound:
		return StatusNotFound
	default:
		return StatusError
	}
}

// FreeSlotsOutput lists the free working-hours slots of one date.
type FreeSlotsOutput struct {
	Date   string
	Window availability.Window
	Slots  []availability.Interval
}
