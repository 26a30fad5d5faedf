package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddRejectsBadSpec(t *testing.T) {
	s := New(nil)
	assert.Error(t, s.Add("not a spec", "bad", func(context.Context) error { return nil }))
	assert.NoError(t, s.Add("@every 15m", "ok", func(context.Context) error { return nil }))
}

func TestRunLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(core))

	s.run("expire", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return errors.New("db down")
	})
	assert.Equal(t, 1, logs.FilterMessage("scheduled job failed").Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}
