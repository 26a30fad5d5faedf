package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	aiadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/adapter"
	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	cacheadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/adapter"
	cacheport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/config"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database"
	mailadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/adapter"
	mailport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
	qport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
	partnertask "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/task"
	partnerusecase "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
	partneradapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/adapter"
	usertask "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/task"
	userusecase "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
	useradapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/adapter"
)

const (
	cachePrefix  = "coupleclarity:"
	relayChannel = "coupleclarity:relay"
	bcryptCost   = 12
)

// services holds the process-wide dependencies shared by serve and worker.
type services struct {
	cfg    config.Config
	logger *zap.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	cache cacheport.Cache

	transformer aiport.Transformer
	summarizer  aiport.Summarizer
	images      aiport.ImageGenerator
	mailer      mailport.Mailer

	partnerRepo *partneradapter.PgPartnerRepository
	userRepo    *useradapter.PgUserRepository
	partners    *partnerusecase.ResolvePartnerUseCase
	relay       *realtime.Relay
	sessions    *auth.SessionManager
	hasher      *auth.PasswordHasher
}

func newServices(ctx context.Context, cfg config.Config, logger *zap.Logger) (*services, error) {
	s := &services{cfg: cfg, logger: logger}

	pool, err := database.Connect(ctx, cfg.DatabaseURL, database.WithMaxConns(cfg.DBMaxConns))
	if err != nil {
		return nil, err
	}
	s.pool = pool

	var broker realtime.Broker
	if cfg.HasRedis() {
		client, err := cacheadapter.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			pool.Close()
			return nil, err
		}
		s.redis = client
		s.cache = cacheadapter.NewRedisCache(client, cachePrefix)
		broker = realtime.NewRedisBroker(client, relayChannel, logger)
	} else {
		logger.Info("REDIS_URL not set: using in-process cache, queue and relay")
		s.cache = cacheadapter.NewMemoryCache()
	}

	if cfg.GeminiAPIKey != "" {
		g, err := aiadapter.NewGenAI(ctx, cfg.GeminiAPIKey, cfg.AITextModel, cfg.AIImageModel, logger)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("ai: %w", err)
		}
		s.transformer = aiadapter.NewCachedTransformer(g, s.cache, g.TextModel(), cfg.TransformCacheTTL, logger)
		s.summarizer = g
		s.images = g
	} else {
		logger.Warn("GEMINI_API_KEY not set: AI features respond 503")
		s.transformer = aiadapter.Unavailable{}
		s.summarizer = aiadapter.Unavailable{}
		s.images = aiadapter.Unavailable{}
	}

	if cfg.HasSMTP() {
		m, err := mailadapter.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.mailer = m
	} else {
		s.mailer = mailadapter.NewLogMailer(logger)
	}

	s.partnerRepo = partneradapter.NewPgPartnerRepository(pool)
	s.userRepo = useradapter.NewPgUserRepository(pool)
	s.partners = partnerusecase.NewResolvePartnerUseCase(s.partnerRepo)
	s.relay = realtime.NewRelay(realtime.NewHub(), s.partners, broker, logger)
	s.sessions = auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)
	s.hasher = auth.NewPasswordHasher(bcryptCost)
	return s, nil
}

// registerTasks binds every background task handler to srv.
func (s *services) registerTasks(srv qport.Server) {
	partnertask.RegisterSendInvitationTask(srv, partnerusecase.NewSendInvitationEmailUseCase(s.mailer))
	usertask.RegisterGenerateAvatarTask(srv, userusecase.NewGenerateAvatarUseCase(s.userRepo, s.images, s.relay))
}

func (s *services) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
