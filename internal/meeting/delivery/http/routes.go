package http

import (
	"github.com/gin-gonic/gin"

	"meetbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/assistant", mw.RateLimit(), h.Assistant)

	meetings := rg.Group("/meetings", mw.RateLimit())
	{
		meetings.POST("/schedule", h.Schedule)
		meetings.POST("/cancel", h.Cancel)
		meetings.GET("", h.List)
		meetings.GET("/slots", h.FreeSlots)
		meetings.GET("/export.ics", h.Export)
		meetings.GET("/:id", h.Detail)
	}
}
