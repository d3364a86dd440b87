// Package app wires configuration into a ready meeting use case shared by
// the api, cli and consumer binaries.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"meetbot/config"
	"meetbot/internal/availability"
	"meetbot/internal/extractor"
	"meetbot/internal/meeting"
	gcalHook "meetbot/internal/meeting/hook/gcal"
	rabbitHook "meetbot/internal/meeting/hook/rabbit"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/meeting/repository/memory"
	"meetbot/internal/meeting/repository/postgre"
	"meetbot/internal/meeting/usecase"
	"meetbot/internal/metrics"
	"meetbot/internal/router"
	"meetbot/pkg/datemath"
	"meetbot/pkg/gcalendar"
	"meetbot/pkg/log"
	"meetbot/pkg/postgres"
	"meetbot/pkg/rabbit"
	"meetbot/pkg/telemetry"
)

// Options selects the optional parts of the wiring.
type Options struct {
	// Hooks enables the Google Calendar and RabbitMQ hooks when configured.
	Hooks bool
	// Observability registers prometheus collectors and otel providers.
	Observability bool
}

// App holds the wired dependencies and everything that must be closed.
type App struct {
	l        log.Logger
	Meetings meeting.UseCase
	Repo     repository.Repository
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	pool      *pgxpool.Pool
	telemetry *telemetry.Provider
	rabbit    *rabbit.Provider
}

// New builds the meeting use case from cfg. Optional integrations that fail
// to start are logged and skipped; the store and core never are.
func New(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (*App, error) {
	a := &App{l: l}

	if opts.Observability {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		a.Metrics = metrics.New(a.Registry)

		tp, err := telemetry.Setup(ctx, telemetry.Config{
			ServiceName:       cfg.MCP.Name,
			TraceStdout:       cfg.Telemetry.TraceStdout,
			TraceSamplingRate: cfg.Telemetry.SamplingRate,
		}, a.Registry)
		if err != nil {
			return nil, err
		}
		a.telemetry = tp
	}

	repo, err := a.openStore(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Repo = repo

	parser, err := datemath.NewParser(cfg.Scheduling.Timezone)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("app.New: %w", err)
	}
	engine, err := availability.New(availability.Window{
		Start: cfg.Scheduling.WorkStart,
		End:   cfg.Scheduling.WorkEnd,
	})
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("app.New: %w", err)
	}
	ext := extractor.New(parser, extractor.WithTitleMaxLen(cfg.Scheduling.TitleMaxLen))

	ucOpts := []usecase.Option{usecase.WithDedupWindow(cfg.Scheduling.DedupWindow)}
	if a.Metrics != nil {
		ucOpts = append(ucOpts, usecase.WithRecorder(a.Metrics))
	}
	if opts.Hooks {
		ucOpts = append(ucOpts, usecase.WithHooks(a.hooks(ctx, cfg)...))
	}

	a.Meetings = usecase.New(l, repo, ext, engine, router.New(l), ucOpts...)
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	switch cfg.Storage.Type {
	case config.StoragePostgres:
		pool, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		if err := postgre.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		a.l.Infof(ctx, "Meeting store: postgres %s/%s", cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Database)
		return postgre.New(pool, a.l), nil
	default:
		a.l.Warn(ctx, "Meeting store: memory (not durable)")
		return memory.New(a.l), nil
	}
}

// Connect opens the configured postgres pool.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pg := cfg.Storage.Postgres
	return postgres.Connect(ctx, postgres.Config{
		Host:     pg.Host,
		Port:     pg.Port,
		User:     pg.User,
		Password: pg.Password,
		Database: pg.Database,
		SSLMode:  pg.SSLMode,
		MaxConns: pg.MaxConns,
	})
}

func (a *App) hooks(ctx context.Context, cfg *config.Config) []meeting.Hook {
	var hooks []meeting.Hook

	if cfg.GoogleCalendar.Enabled {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			a.l.Warnf(ctx, "Google Calendar mirror disabled: %v", err)
			a.l.Warn(ctx, "Run `meetbot gcal-auth` to generate the token file")
		} else if h, err := gcalHook.New(client, gcalHook.Config{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
		}, a.l); err != nil {
			a.l.Warnf(ctx, "Google Calendar mirror disabled: %v", err)
		} else {
			hooks = append(hooks, h)
			a.l.Info(ctx, "Google Calendar mirror enabled")
		}
	}

	if cfg.RabbitMQ.Enabled {
		provider := rabbit.New(rabbit.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
		if err := provider.Connect(); err != nil {
			a.l.Warnf(ctx, "RabbitMQ events disabled: %v", err)
		} else {
			a.rabbit = provider
			hooks = append(hooks, rabbitHook.New(provider))
			a.l.Infof(ctx, "RabbitMQ events published to %s", cfg.RabbitMQ.Queue)
		}
	}

	return hooks
}

// Ready pings the database when there is one.
func (a *App) Ready(ctx context.Context) error {
	if a.pool == nil {
		return nil
	}
	return a.pool.Ping(ctx)
}

// Close releases connections and flushes telemetry.
func (a *App) Close(ctx context.Context) {
	if a.rabbit != nil {
		a.rabbit.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.telemetry != nil {
		if err := a.telemetry.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.l.Warnf(ctx, "telemetry shutdown: %v", err)
		}
	}
}
