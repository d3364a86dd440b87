package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"meetbot/config"
	"meetbot/internal/app"
	"meetbot/internal/meeting/repository/postgre"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the meetings table in postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.Type != config.StoragePostgres {
				return errors.New("migrate needs storage.type=postgres")
			}

			ctx := cmd.Context()
			pool, err := app.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgre.Migrate(ctx, pool); err != nil {
				return err
			}
			logger.Infof(ctx, "Schema ready in %s", cfg.Storage.Postgres.Database)
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
