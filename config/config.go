package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
	Telemetry  TelemetryConfig

	// Meetings
	Storage    StorageConfig
	Scheduling SchedulingConfig

	// Outer adapters and hooks
	MCP            MCPConfig
	GoogleCalendar GoogleCalendarConfig
	RabbitMQ       RabbitMQConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

type TelemetryConfig struct {
	TraceStdout  bool
	SamplingRate float64
}

type StorageConfig struct {
	Type     string
	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
}

type SchedulingConfig struct {
	// Timezone decides what "today" is. Meeting times carry no zone.
	Timezone    string
	WorkStart   string
	WorkEnd     string
	DedupWindow time.Duration
	TitleMaxLen int
}

type MCPConfig struct {
	Name    string
	Version string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
	Queue   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/meetbot/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/meetbot/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Telemetry.TraceStdout = viper.GetBool("telemetry.trace_stdout")
	cfg.Telemetry.SamplingRate = viper.GetFloat64("telemetry.sampling_rate")

	// Storage
	cfg.Storage.Type = strings.ToLower(strings.TrimSpace(viper.GetString("storage.type")))
	cfg.Storage.Postgres.Host = viper.GetString("storage.postgres.host")
	cfg.Storage.Postgres.Port = viper.GetInt("storage.postgres.port")
	cfg.Storage.Postgres.User = viper.GetString("storage.postgres.user")
	cfg.Storage.Postgres.Password = expandEnvVar(viper.GetString("storage.postgres.password"))
	cfg.Storage.Postgres.Database = viper.GetString("storage.postgres.database")
	cfg.Storage.Postgres.SSLMode = viper.GetString("storage.postgres.sslmode")
	cfg.Storage.Postgres.MaxConns = viper.GetInt32("storage.postgres.max_conns")

	// Scheduling
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkStart = viper.GetString("scheduling.work_start")
	cfg.Scheduling.WorkEnd = viper.GetString("scheduling.work_end")
	cfg.Scheduling.DedupWindow = viper.GetDuration("scheduling.dedup_window")
	cfg.Scheduling.TitleMaxLen = viper.GetInt("scheduling.title_max_len")

	// MCP
	cfg.MCP.Name = viper.GetString("mcp.name")
	cfg.MCP.Version = viper.GetString("mcp.version")

	// Google Calendar mirror
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if cfg.GoogleCalendar.Timezone == "" {
		cfg.GoogleCalendar.Timezone = cfg.Scheduling.Timezone
	}

	// RabbitMQ lifecycle events
	cfg.RabbitMQ.Enabled = viper.GetBool("rabbitmq.enabled")
	cfg.RabbitMQ.URL = expandEnvVar(viper.GetString("rabbitmq.url"))
	cfg.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("telemetry.trace_stdout", false)
	viper.SetDefault("telemetry.sampling_rate", 0.0)

	viper.SetDefault("storage.type", StorageMemory)
	viper.SetDefault("storage.postgres.host", "localhost")
	viper.SetDefault("storage.postgres.port", 5432)
	viper.SetDefault("storage.postgres.database", "meetbot")
	viper.SetDefault("storage.postgres.sslmode", "disable")
	viper.SetDefault("storage.postgres.max_conns", 10)

	viper.SetDefault("scheduling.timezone", "UTC")
	viper.SetDefault("scheduling.work_start", "09:00")
	viper.SetDefault("scheduling.work_end", "18:00")
	viper.SetDefault("scheduling.dedup_window", "10s")
	viper.SetDefault("scheduling.title_max_len", 100)

	viper.SetDefault("mcp.name", "meetbot")
	viper.SetDefault("mcp.version", "1.0.0")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")

	viper.SetDefault("rabbitmq.enabled", false)
	viper.SetDefault("rabbitmq.queue", "meetbot.meetings")
}

// Validate checks values that would otherwise fail deep inside the wiring.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StoragePostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.Database == "" {
			errs = append(errs, errors.New("storage.postgres.host and storage.postgres.database are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.type %q must be %q or %q", c.Storage.Type, StorageMemory, StoragePostgres))
	}

	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("scheduling.timezone: %w", err))
	}
	start, startErr := parseClock(c.Scheduling.WorkStart)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("scheduling.work_start: %w", startErr))
	}
	end, endErr := parseClock(c.Scheduling.WorkEnd)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("scheduling.work_end: %w", endErr))
	}
	if startErr == nil && endErr == nil && !start.Before(end) {
		errs = append(errs, fmt.Errorf("scheduling.work_start %s must be before work_end %s", c.Scheduling.WorkStart, c.Scheduling.WorkEnd))
	}
	if c.Scheduling.TitleMaxLen <= 0 {
		errs = append(errs, errors.New("scheduling.title_max_len must be positive"))
	}

	if c.GoogleCalendar.Enabled && c.GoogleCalendar.CredentialsPath == "" {
		errs = append(errs, errors.New("google_calendar.credentials_path is required when google_calendar.enabled"))
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.URL == "" || c.RabbitMQ.Queue == "") {
		errs = append(errs, errors.New("rabbitmq.url and rabbitmq.queue are required when rabbitmq.enabled"))
	}

	return errors.Join(errs...)
}

// parseClock accepts zero-padded 24-hour HH:MM.
func parseClock(s string) (time.Time, error) {
	if len(s) != len("15:04") {
		return time.Time{}, fmt.Errorf("%q is not HH:MM", s)
	}
	return time.Parse("15:04", s)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
