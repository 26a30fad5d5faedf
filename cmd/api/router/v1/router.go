package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	cacheport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/logging"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
	qport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ratelimit"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
	appreciationadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/adapter"
	appreciationhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/presentation/http"
	checkinadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/adapter"
	checkinhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/presentation/http"
	conflictadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/adapter"
	conflicthttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/presentation/http"
	dmadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/adapter"
	dmhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/presentation/http"
	exerciseadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/adapter"
	exercisehttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/presentation/http"
	journaladapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/adapter"
	journalhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/presentation/http"
	messageadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/adapter"
	messagehttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/presentation/http"
	milestoneadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/adapter"
	milestonehttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/presentation/http"
	partnerusecase "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
	partneradapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/adapter"
	partnerhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/presentation/http"
	relayhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/relay/presentation/http"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	userusecase "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
	useradapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/adapter"
	userhttp "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/presentation/http"
)

// AI groups the model-backed ports. Every field may be the unavailable
// stand-in when no provider is configured.
type AI struct {
	Transformer aiport.Transformer
	Summarizer  aiport.Summarizer
}

// Deps are the process-wide services the routes are built from.
type Deps struct {
	Pool     *pgxpool.Pool
	Cache    cacheport.Cache
	Queue    qport.Client
	Relay    *realtime.Relay
	// Partners resolves partnerships for every context. The relay is built
	// on the same resolver.
	Partners shared.PartnerResolver
	Sessions *auth.SessionManager
	Hasher   *auth.PasswordHasher
	AI       AI
	// AILimiter throttles every model-backed request per user; nil disables it.
	AILimiter *ratelimit.Limiter

	BaseURL       string
	InvitationTTL time.Duration
	// CheckRedis reports whether /healthz should ping the cache.
	CheckRedis bool
	Logger     *zap.Logger
}

// NewEngine builds the HTTP engine: health and metrics at the root, the relay
// socket at /ws and the JSON API under /api.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(d.Logger), metrics.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/healthz", healthz(d))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	relayhttp.RegisterRoutes(r, d.Relay, d.Sessions, d.BaseURL, d.Logger)

	api := r.Group("/api")
	RegisterRoutes(httpx.Groups{
		Public:  api,
		Private: api.Group("", auth.RequireSession(d.Sessions)),
	}, d)
	return r
}

// RegisterRoutes mounts every bounded context on g.
func RegisterRoutes(g httpx.Groups, d Deps) {
	userRepo := useradapter.NewPgUserRepository(d.Pool)
	partnerRepo := partneradapter.NewPgPartnerRepository(d.Pool)
	partners := d.Partners

	register := userusecase.NewRegisterUseCase(userRepo, d.Hasher)
	registerAccount := func(ctx context.Context, in partnerusecase.NewAccount) (string, error) {
		u, err := register.Execute(ctx, userusecase.RegisterInput{
			Username:    in.Username,
			Email:       in.Email,
			Password:    in.Password,
			DisplayName: in.DisplayName,
		})
		if err != nil {
			return "", err
		}
		return u.ID, nil
	}

	var (
		limit   gin.HandlerFunc
		limitAI func(*gin.Context) bool
	)
	if d.AILimiter != nil {
		limit = d.AILimiter.Middleware()
		limitAI = d.AILimiter.Admit
	}

	userhttp.RegisterRoutes(g, userRepo, d.Queue, d.Sessions, d.Hasher, limit, d.Logger)
	partnerhttp.RegisterRoutes(g, partnerRepo, d.Queue, d.Relay, d.Sessions, partnerhttp.Options{
		BaseURL:       d.BaseURL,
		InvitationTTL: d.InvitationTTL,
		Register:      registerAccount,
	}, d.Logger)
	messagehttp.RegisterRoutes(g, messageadapter.NewPgMessageRepository(d.Pool), d.AI.Transformer, partners, d.Relay, limit, d.Logger)
	journalhttp.RegisterRoutes(g, journaladapter.NewPgJournalRepository(d.Pool), partners, d.Relay, d.Logger)
	conflicthttp.RegisterRoutes(g, conflictadapter.NewPgConflictRepository(d.Pool), partners, d.Relay, d.AI.Transformer, d.AI.Summarizer, limitAI, d.Logger)
	dmhttp.RegisterRoutes(g, dmadapter.NewPgDirectMessageRepository(d.Pool), partners, d.Relay, d.Logger)
	milestonehttp.RegisterRoutes(g, milestoneadapter.NewPgMilestoneRepository(d.Pool), partners, d.Relay, d.Logger)
	checkinhttp.RegisterRoutes(g, checkinadapter.NewPgCheckInRepository(d.Pool), partners, d.Relay, d.Logger)
	appreciationhttp.RegisterRoutes(g, appreciationadapter.NewPgAppreciationRepository(d.Pool), partners, d.Relay, d.Logger)
	exercisehttp.RegisterRoutes(g, exerciseadapter.NewPgExerciseRepository(d.Pool), partners, d.Relay, d.Logger)
}

func healthz(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"postgres": "ok"}
		healthy := true
		if err := d.Pool.Ping(ctx); err != nil {
			checks["postgres"] = err.Error()
			healthy = false
		}
		if d.CheckRedis && d.Cache != nil {
			checks["redis"] = "ok"
			if err := d.Cache.Ping(ctx); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"healthy": healthy, "checks": checks})
	}
}
