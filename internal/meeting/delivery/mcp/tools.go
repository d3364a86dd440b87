package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools adds the meeting tools to s.
func RegisterTools(s *mcpserver.MCPServer, h *handler) {
	s.AddTool(mcp.NewTool(ToolSchedule,
		mcp.WithDescription("Schedule a meeting from free text such as 'tomorrow 3 to 4 for project review'. "+
			"Returns the booked meeting, or the free slots of that day when the time is taken."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Request naming a date, a time range and optionally a title"),
		),
		mcp.WithString("description",
			mcp.Description("Optional meeting description"),
		),
		mcp.WithString("location",
			mcp.Description("Optional meeting location"),
		),
	), h.handleSchedule)

	s.AddTool(mcp.NewTool(ToolCancel,
		mcp.WithDescription("Cancel a meeting by id ('cancel meeting 5') or by title and optional date ('cancel the standup tomorrow'). "+
			"Several matches are returned as candidates and nothing is deleted."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Cancellation request"),
		),
	), h.handleCancel)

	s.AddTool(mcp.NewTool(ToolList,
		mcp.WithDescription("List meetings of one date, or of every date when no date is given"),
		mcp.WithString("date",
			mcp.Description("YYYY-MM-DD or an expression like 'tomorrow' or 'next friday'"),
		),
	), h.handleList)

	s.AddTool(mcp.NewTool(ToolSlots,
		mcp.WithDescription("Find the free slots inside working hours on a date"),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("YYYY-MM-DD or an expression like 'tomorrow'"),
		),
	), h.handleSlots)

	s.AddTool(mcp.NewTool(ToolExport,
		mcp.WithDescription("Export meetings as an iCalendar document"),
		mcp.WithString("date",
			mcp.Description("YYYY-MM-DD or an expression like 'tomorrow'; all dates when empty"),
		),
	), h.handleExport)

	s.AddTool(mcp.NewTool(ToolAsk,
		mcp.WithDescription("Run any free-text meeting request; the intent (schedule, cancel, list) is detected"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Free-text request"),
		),
	), h.handleAsk)
}
