package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	qadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/adapter"
)

func newWorkerCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the background task worker (requires REDIS_URL)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if !cfg.HasRedis() {
				return errors.New("worker: REDIS_URL is not set; tasks run inside serve instead")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			s, err := newServices(connectCtx, cfg, logger)
			cancel()
			if err != nil {
				return err
			}
			defer s.Close()

			srv, err := qadapter.NewAsynqServer(cfg.RedisURL, qadapter.ServerOptions{
				Concurrency: cfg.AsynqConcurrency,
				Queues:      cfg.AsynqQueues,
			}, logger)
			if err != nil {
				return err
			}
			s.registerTasks(srv)
			logger.Info("worker started", zap.Int("concurrency", cfg.AsynqConcurrency), zap.String("queues", cfg.AsynqQueues))
			return srv.Run(ctx)
		},
	}
}
