package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "meetbot",
	Short: "Schedule, cancel and list meetings from plain text",
	Long: `meetbot turns requests like "schedule tomorrow 3 to 4 for project review"
into conflict-free calendar changes.

It can run as:
  - A one-shot CLI (ask, list, slots, export)
  - An MCP (Model Context Protocol) server over stdio (mcp)

Configuration is read from config.yaml and the environment; use
STORAGE_TYPE=postgres for a store that survives between invocations.`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetbot version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSlotsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newGCalAuthCmd())
}

// loadConfig reads the configuration and builds the process logger.
func loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, logger, nil
}

// withApp wires the core, runs fn and releases everything afterwards.
func withApp(ctx context.Context, hooks bool, fn func(a *app.App, cfg *config.Config, l log.Logger) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg, logger, app.Options{Hooks: hooks})
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	return fn(a, cfg, logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
