package http

import (
	"strings"

	"meetbot/internal/meeting"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r textReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errWrongBody
	}
	return nil
}

// ---

type scheduleReq struct {
	Text        string `json:"text"        binding:"required,max=1000"`
	Description string `json:"description" binding:"max=2000"`
	Location    string `json:"location"    binding:"max=255"`
}

func (r scheduleReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errWrongBody
	}
	return nil
}

func (r scheduleReq) toInput() meeting.ScheduleInput {
	return meeting.ScheduleInput{
		Text:        r.Text,
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
	}
}

// ---

type listReq struct {
	Date  string `form:"date"`
	Query string `form:"q"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() meeting.ListInput {
	return meeting.ListInput{
		Text: r.Query,
		Date: r.Date,
	}
}

// ---

type slotsReq struct {
	Date string `form:"date" binding:"required"`
}

func (r slotsReq) validate() error { return nil }

// --- Response DTOs ---

type detailResp struct {
	Meeting meeting.MeetingView `json:"meeting"`
}

func (h *handler) newDetailResp(v meeting.MeetingView) detailResp {
	return detailResp{Meeting: v}
}

type slotResp struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Minutes   int    `json:"minutes"`
}

type slotsResp struct {
	Date      string     `json:"date"`
	WorkStart string     `json:"work_start"`
	WorkEnd   string     `json:"work_end"`
	Slots     []slotResp `json:"slots"`
}

func (h *handler) newSlotsResp(out meeting.FreeSlotsOutput) slotsResp {
	slots := make([]slotResp, 0, len(out.Slots))
	for _, s := range out.Slots {
		slots = append(slots, slotResp{StartTime: s.Start, EndTime: s.End, Minutes: s.Minutes()})
	}
	return slotsResp{
		Date:      out.Date,
		WorkStart: out.Window.Start,
		WorkEnd:   out.Window.End,
		Slots:     slots,
	}
}
