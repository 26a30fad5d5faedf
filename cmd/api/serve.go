package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/charbar-cyber/CoupleClarity-sub001/cmd/api/router/v1"
	qadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/adapter"
	qport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ratelimit"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/scheduler"
	partnerusecase "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

const (
	shutdownTimeout   = 15 * time.Second
	limiterSweepEvery = 10 * time.Minute
	expireInvitations = "@every 15m"
)

func newServeCmd(load loader) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and realtime relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if migrate {
				if err := migrateUp(cfg.DatabaseURL, logger); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg.HTTPAddr, logger, func(ctx context.Context) (*services, error) {
				return newServices(ctx, cfg, logger)
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, addr string, logger *zap.Logger, build func(context.Context) (*services, error)) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	s, err := build(connectCtx)
	cancel()
	if err != nil {
		return err
	}
	defer s.Close()
	cfg := s.cfg

	var bg background
	defer bg.wait()
	ctx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()

	var queue qport.Client
	if cfg.HasRedis() {
		client, err := qadapter.NewAsynqClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		queue = client

		if cfg.RunWorker {
			srv, err := qadapter.NewAsynqServer(cfg.RedisURL, qadapter.ServerOptions{
				Concurrency: cfg.AsynqConcurrency,
				Queues:      cfg.AsynqQueues,
			}, logger)
			if err != nil {
				return err
			}
			s.registerTasks(srv)
			bg.run(logger, "asynq worker", func() error { return srv.Run(ctx) })
		}
	} else {
		inline := qadapter.NewInlineQueue(logger)
		s.registerTasks(inline)
		queue = inline
		bg.run(logger, "inline queue", func() error { return inline.Run(ctx) })
	}

	sched := scheduler.New(logger)
	expire := partnerusecase.NewExpireInvitationsUseCase(s.partnerRepo)
	if err := sched.Add(expireInvitations, "expire_invitations", func(ctx context.Context) error {
		n, err := expire.Execute(ctx)
		if n > 0 {
			logger.Info("expired invitations", zap.Int64("count", n))
		}
		return err
	}); err != nil {
		return err
	}
	bg.run(logger, "scheduler", func() error { return sched.Run(ctx) })

	limiter := ratelimit.New(cfg.AIRatePerMinute, cfg.AIRateBurst)
	bg.run(logger, "rate limiter sweep", func() error {
		limiter.RunCleanup(ctx, limiterSweepEvery)
		return nil
	})
	bg.run(logger, "relay", func() error { return s.relay.Run(ctx) })

	gin.SetMode(gin.ReleaseMode)
	engine := v1.NewEngine(v1.Deps{
		Pool:          s.pool,
		Cache:         s.cache,
		Queue:         queue,
		Relay:         s.relay,
		Partners:      s.partners,
		Sessions:      s.sessions,
		Hasher:        s.hasher,
		AI:            v1.AI{Transformer: s.transformer, Summarizer: s.summarizer},
		AILimiter:     limiter,
		BaseURL:       cfg.AppBaseURL,
		InvitationTTL: cfg.InvitationTTL,
		CheckRedis:    cfg.HasRedis(),
		Logger:        logger,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Hijacked sockets are not tracked by Shutdown.
	s.relay.Hub().Close()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	stopBackground()
	return nil
}

// background tracks the long-running loops started next to the HTTP server.
type background struct {
	wg sync.WaitGroup
}

func (b *background) run(logger *zap.Logger, name string, fn func() error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := fn(); err != nil {
			logger.Error("background loop stopped", zap.String("name", name), zap.Error(err))
		}
	}()
}

func (b *background) wait() { b.wg.Wait() }
