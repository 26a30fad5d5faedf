package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/config"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/logging"
)

func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "coupleclarity",
		Short:         "CoupleClarity API server, task worker and migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file loaded before the environment is decoded")

	load := func() (config.Config, *zap.Logger, error) {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return config.Config{}, nil, err
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, nil, err
		}
		logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("logger: %w", err)
		}
		return cfg, logger, nil
	}

	root.AddCommand(newServeCmd(load), newWorkerCmd(load), newMigrateCmd(load))
	return root
}

// loader resolves configuration and the process logger for a subcommand.
type loader func() (config.Config, *zap.Logger, error)
