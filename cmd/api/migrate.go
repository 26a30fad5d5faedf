package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database"
)

func newMigrateCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return migrateUp(cfg.DatabaseURL, logger)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				steps = n
			}
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if err := database.MigrateDown(cfg.DatabaseURL, steps); err != nil {
				return err
			}
			logger.Info("migrations rolled back", zap.Int("steps", steps))
			return nil
		},
	})
	return cmd
}

func migrateUp(dsn string, logger *zap.Logger) error {
	if err := database.MigrateUp(dsn); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}
