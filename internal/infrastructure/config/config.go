package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the process configuration, decoded from the environment.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR,default=:8080"`

	DatabaseURL string `env:"DB_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS,default=4"`

	// RedisURL is optional. When empty the cache, queue and relay broker fall
	// back to in-process implementations.
	RedisURL         string `env:"REDIS_URL"`
	AsynqConcurrency int    `env:"ASYNQ_CONCURRENCY,default=10"`
	AsynqQueues      string `env:"ASYNQ_QUEUES"`
	RunWorker        bool   `env:"RUN_WORKER,default=true"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=168h"`
	CookieSecure  bool          `env:"COOKIE_SECURE,default=false"`

	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	AITextModel       string        `env:"AI_TEXT_MODEL,default=gemini-2.5-flash"`
	AIImageModel      string        `env:"AI_IMAGE_MODEL,default=imagen-3.0-generate-002"`
	TransformCacheTTL time.Duration `env:"TRANSFORM_CACHE_TTL,default=24h"`
	AIRatePerMinute   int           `env:"AI_RATE_PER_MINUTE,default=10"`
	AIRateBurst       int           `env:"AI_RATE_BURST,default=3"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM,default=CoupleClarity <no-reply@coupleclarity.app>"`

	AppBaseURL    string        `env:"APP_BASE_URL,default=http://localhost:5000"`
	InvitationTTL time.Duration `env:"INVITATION_TTL,default=168h"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

// DefaultQueues is used when ASYNQ_QUEUES is unset.
const DefaultQueues = "default=1,mail=1,ai=1"

// Load reads an optional .env file and decodes the environment into a Config.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	if strings.TrimSpace(cfg.AsynqQueues) == "" {
		cfg.AsynqQueues = DefaultQueues
	}
	cfg.AppBaseURL = strings.TrimRight(cfg.AppBaseURL, "/")
	return cfg, nil
}

// Validate checks the settings every command needs.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("DB_URL is not set"))
	}
	if len(c.SessionSecret) < 32 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 32 characters"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.InvitationTTL <= 0 {
		errs = append(errs, errors.New("INVITATION_TTL must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// HasRedis reports whether Redis-backed adapters should be used.
func (c Config) HasRedis() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}

// HasSMTP reports whether invitation e-mails are delivered over SMTP.
func (c Config) HasSMTP() bool {
	return strings.TrimSpace(c.SMTPHost) != ""
}
