package http

import (
	"github.com/gin-gonic/gin"

	"meetbot/internal/meeting"
	"meetbot/pkg/log"
)

// Handler is the public interface for the meeting HTTP delivery layer.
type Handler interface {
	Assistant(c *gin.Context)
	Schedule(c *gin.Context)
	Cancel(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	FreeSlots(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc meeting.UseCase
}

// New creates a new HTTP handler for the meeting domain.
func New(l log.Logger, uc meeting.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
