// Package mcp exposes the meeting use cases as MCP tools.
package mcp

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

// Tool names.
const (
	ToolSchedule = "schedule_meeting"
	ToolCancel   = "cancel_meeting"
	ToolList     = "get_calendar_meetings"
	ToolSlots    = "find_free_slots"
	ToolExport   = "export_meetings"
	ToolAsk      = "meeting_assistant"
)

type handler struct {
	l  log.Logger
	uc meeting.UseCase
}

func New(l log.Logger, uc meeting.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// NewServer builds an MCP server with every meeting tool registered.
func NewServer(name, version string, h *handler) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(name, version,
		mcpserver.WithToolCapabilities(true),
	)
	RegisterTools(s, h)
	return s
}
