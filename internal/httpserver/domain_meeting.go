package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	meetingHTTP "meetbot/internal/meeting/delivery/http"
	"meetbot/internal/middleware"
)

// setupMeetingDomain registers /api/v1/assistant and /api/v1/meetings/*.
// The use case is built by the caller so the CLI and MCP server share it.
func (srv HTTPServer) setupMeetingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := meetingHTTP.New(srv.l, srv.meetingUC)
	meetingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Meeting domain registered")
	return nil
}
