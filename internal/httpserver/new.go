package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"meetbot/internal/meeting"
	"meetbot/internal/middleware"
	"meetbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Meeting domain
	meetingUC meeting.UseCase
	mw        middleware.Middleware

	// Observability
	gatherer prometheus.Gatherer
	ready    func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	MeetingUC  meeting.UseCase
	Middleware middleware.Middleware

	// Gatherer backs /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
	// ReadyCheck reports whether dependencies (the database) are reachable.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		meetingUC:   cfg.MeetingUC,
		mw:          cfg.Middleware,
		gatherer:    cfg.Gatherer,
		ready:       cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.meetingUC == nil {
		return errors.New("meeting usecase is required")
	}
	return nil
}
