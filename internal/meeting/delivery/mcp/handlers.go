package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"meetbot/internal/meeting"
)

func (h *handler) handleSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text := stringArg(args, "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	out, err := h.uc.Schedule(ctx, meeting.ScheduleInput{
		Text:        text,
		Description: stringArg(args, "description"),
		Location:    stringArg(args, "location"),
	})
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleSchedule: %v", err)
		return toolError(err), nil
	}
	return outcomeResult(out)
}

func (h *handler) handleCancel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text := stringArg(args, "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	out, err := h.uc.Cancel(ctx, meeting.CancelInput{Text: text})
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleCancel: %v", err)
		return toolError(err), nil
	}
	return outcomeResult(out)
}

func (h *handler) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := meeting.ListInput{Date: stringArg(request.GetArguments(), "date")}
	if input.Date == "" {
		input.Text = "all"
	}

	out, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleList: %v", err)
		return toolError(err), nil
	}
	return outcomeResult(out)
}

type slotsResult struct {
	Status    string             `json:"status"`
	Date      string             `json:"date"`
	WorkStart string             `json:"work_start"`
	WorkEnd   string             `json:"work_end"`
	Slots     []meeting.SlotView `json:"slots"`
}

func (h *handler) handleSlots(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := stringArg(request.GetArguments(), "date")
	if date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	out, err := h.uc.FreeSlots(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleSlots: %v", err)
		return toolError(err), nil
	}
	return jsonResult(slotsResult{
		Status:    meeting.StatusSuccess,
		Date:      out.Date,
		WorkStart: out.Window.Start,
		WorkEnd:   out.Window.End,
		Slots:     meeting.NewSlotViews(out.Slots, out.Slots),
	})
}

func (h *handler) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, err := h.uc.Export(ctx, meeting.ListInput{Date: stringArg(request.GetArguments(), "date")})
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleExport: %v", err)
		return toolError(err), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

func (h *handler) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text := stringArg(args, "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	out, err := h.uc.Handle(ctx, text)
	if err != nil {
		h.l.Errorf(ctx, "mcp.handleAsk: %v", err)
		return toolError(err), nil
	}
	return outcomeResult(out)
}

// stringArg returns the trimmed string argument, or "" when absent or not a string.
func stringArg(args map[string]any, key string) string {
	v, ok := args[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func outcomeResult(out meeting.Outcome) (*mcp.CallToolResult, error) {
	return jsonResult(meeting.NewOutcomeView(out))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError hides store details behind a generic message.
func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, meeting.ErrMeetingNotFound):
		return mcp.NewToolResultError("no meetings found")
	case errors.Is(err, meeting.ErrInvalidDate):
		return mcp.NewToolResultError(err.Error())
	case errors.Is(err, meeting.ErrEmptyInput):
		return mcp.NewToolResultError("request text is empty")
	default:
		return mcp.NewToolResultError("the meeting store is unavailable, try again later")
	}
}
