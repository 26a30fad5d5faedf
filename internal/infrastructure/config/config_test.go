package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/clarity")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, DefaultQueues, cfg.AsynqQueues)
	assert.Equal(t, 10, cfg.AsynqConcurrency)
	assert.True(t, cfg.RunWorker)
	assert.False(t, cfg.HasRedis())
	assert.False(t, cfg.HasSMTP())
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/clarity")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("APP_BASE_URL", "https://clarity.example/")
	t.Setenv("INVITATION_TTL", "48h")
	t.Setenv("ASYNQ_QUEUES", "mail=3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasRedis())
	assert.Equal(t, "https://clarity.example", cfg.AppBaseURL)
	assert.Equal(t, 48*time.Hour, cfg.InvitationTTL)
	assert.Equal(t, "mail=3", cfg.AsynqQueues)
}

func TestValidateRejectsMissingSecrets(t *testing.T) {
	cfg := Config{SessionTTL: time.Hour, InvitationTTL: time.Hour}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}
