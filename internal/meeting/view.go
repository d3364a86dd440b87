package meeting

import (
	"meetbot/internal/availability"
	"meetbot/internal/model"
	"meetbot/pkg/response"
)

// MeetingView is the wire form of a meeting shared by every adapter.
type MeetingView struct {
	ID          int64              `json:"id"`
	Date        string             `json:"date"`
	Title       string             `json:"title"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location,omitempty"`
	CreatedAt   *response.DateTime `json:"created_at,omitempty"`
}

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Fits      bool   `json:"fits"`
}

type RequestedView struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
}

// OutcomeView is the structured result returned by HTTP, MCP and the CLI.
type OutcomeView struct {
	Status         string         `json:"status"`
	Intent         string         `json:"intent,omitempty"`
	Meeting        *MeetingView   `json:"meeting,omitempty"`
	Duplicate      bool           `json:"duplicate,omitempty"`
	Removed        *MeetingView   `json:"removed,omitempty"`
	Requested      *RequestedView `json:"requested,omitempty"`
	AvailableSlots []SlotView     `json:"available_slots,omitempty"`
	Candidates     []MeetingView  `json:"candidates,omitempty"`
	Date           string         `json:"date,omitempty"`
	Meetings       *[]MeetingView `json:"meetings,omitempty"`
	Reason         string         `json:"reason,omitempty"`
	Kind           string         `json:"kind,omitempty"`
	Text           string         `json:"text,omitempty"`
}

func NewMeetingView(m model.Meeting) MeetingView {
	return MeetingView{
		ID:          m.ID,
		Date:        m.Date,
		Title:       m.Title,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Description: m.Description,
		Location:    m.Location,
		CreatedAt:   response.NewDateTime(m.CreatedAt),
	}
}

func NewMeetingViews(ms []model.Meeting) []MeetingView {
	out := make([]MeetingView, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMeetingView(m))
	}
	return out
}

// NewSlotViews marks each slot with whether it is in fitting.
func NewSlotViews(slots, fitting []availability.Interval) []SlotView {
	fits := make(map[availability.Interval]bool, len(fitting))
	for _, s := range fitting {
		fits[s] = true
	}
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{StartTime: s.Start, EndTime: s.End, Fits: fits[s]})
	}
	return out
}

func NewOutcomeView(o Outcome) OutcomeView {
	v := OutcomeView{Status: o.Status(), Intent: o.Intent}

	switch o.Kind {
	case OutcomeScheduled:
		m := NewMeetingView(o.Meeting)
		v.Meeting = &m
		v.Duplicate = o.Duplicate
	case OutcomeCancelled:
		m := NewMeetingView(o.Meeting)
		v.Removed = &m
	case OutcomeConflict:
		v.Requested = &RequestedView{
			Date:      o.Requested.Date,
			StartTime: o.Requested.StartTime,
			EndTime:   o.Requested.EndTime,
			Title:     o.Requested.Title,
		}
		v.AvailableSlots = NewSlotViews(o.AvailableSlots, o.FittingSlots)
	case OutcomeAmbiguous:
		v.Candidates = NewMeetingViews(o.Candidates)
	case OutcomeListed:
		ms := NewMeetingViews(o.Meetings)
		v.Date = o.Date
		v.Meetings = &ms
	case OutcomeRejected:
		if o.ParseError != nil {
			v.Reason = o.ParseError.Error()
			v.Kind = string(o.ParseError.Kind)
			v.Text = o.ParseError.Text
		}
	}
	return v
}
