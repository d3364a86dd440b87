package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meetbot/config"
	_ "meetbot/docs" // Swagger docs
	"meetbot/internal/app"
	"meetbot/internal/httpserver"
	"meetbot/internal/middleware"
	"meetbot/pkg/log"
)

// @title       meetbot API
// @description Free-text meeting scheduling with conflict detection and free-slot suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting meetbot API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store, core and hooks
	a, err := app.New(ctx, cfg, logger, app.Options{
		Hooks:         true,
		Observability: cfg.Metrics.Enabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize meetbot: ", err)
		os.Exit(1)
	}
	defer a.Close(context.Background())

	// 4. HTTP Server
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		MeetingUC:   a.Meetings,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Metrics:        a.Metrics,
		}),
		ReadyCheck: a.Ready,
	}
	if a.Registry != nil {
		srvCfg.Gatherer = a.Registry
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
