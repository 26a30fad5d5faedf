package adapter

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
)

func TestParseQueueWeights(t *testing.T) {
	got := ParseQueueWeights("critical=6, default=3,low, =4,bad=x")
	assert.Equal(t, map[string]int{"critical": 6, "default": 3, "low": 1, "bad": 1}, got)
	assert.Empty(t, ParseQueueWeights(""))
}

func TestAsynqOptionsUsesFirstOption(t *testing.T) {
	assert.Nil(t, asynqOptions(nil))

	opts := asynqOptions([]port.EnqueueOption{
		{Queue: "mail", MaxRetry: 5, Timeout: time.Minute},
		{Queue: "ignored"},
	})
	require.Len(t, opts, 3)
	assert.Equal(t, asynq.QueueOpt, opts[0].Type())
	assert.Equal(t, "mail", opts[0].Value())
}

func TestInlineQueueRunsRegisteredHandler(t *testing.T) {
	q := NewInlineQueue(zap.NewNop())
	var calls atomic.Int32
	var payload atomic.Value
	q.Register("mail:send", func(_ context.Context, task port.Task) error {
		calls.Add(1)
		payload.Store(string(task.Payload))
		return nil
	})

	id, err := q.Enqueue(context.Background(), port.Task{Type: "mail:send", Payload: []byte(`{"to":"a@b.c"}`)})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	q.Drain()
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, `{"to":"a@b.c"}`, payload.Load())
}

func TestInlineQueueRejectsUnknownType(t *testing.T) {
	q := NewInlineQueue(zap.NewNop())
	_, err := q.Enqueue(context.Background(), port.Task{Type: "nope"})
	require.Error(t, err)
}

func TestInlineQueueRunDrainsOnCancel(t *testing.T) {
	q := NewInlineQueue(zap.NewNop())
	done := make(chan struct{})
	q.Register("slow", func(context.Context, port.Task) error {
		time.Sleep(20 * time.Millisecond)
		close(done)
		return nil
	})
	_, err := q.Enqueue(context.Background(), port.Task{Type: "slow"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, q.Run(ctx))

	select {
	case <-done:
	default:
		t.Fatal("Run returned before in-flight task finished")
	}
}
