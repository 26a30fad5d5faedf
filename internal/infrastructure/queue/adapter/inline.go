package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
)

// InlineQueue runs tasks on goroutines inside the API process. It is used
// when no Redis is configured; tasks run once with no retry and are lost on
// shutdown.
type InlineQueue struct {
	mu       sync.RWMutex
	handlers map[string]port.Handler
	wg       sync.WaitGroup
	timeout  time.Duration
	logger   *zap.Logger
}

func NewInlineQueue(logger *zap.Logger) *InlineQueue {
	return &InlineQueue{
		handlers: make(map[string]port.Handler),
		timeout:  2 * time.Minute,
		logger:   logger,
	}
}

var (
	_ port.Client = (*InlineQueue)(nil)
	_ port.Server = (*InlineQueue)(nil)
)

func (q *InlineQueue) Register(taskType string, h port.Handler) {
	q.mu.Lock()
	q.handlers[taskType] = h
	q.mu.Unlock()
}

func (q *InlineQueue) Enqueue(_ context.Context, t port.Task, opts ...port.EnqueueOption) (string, error) {
	q.mu.RLock()
	h, ok := q.handlers[t.Type]
	q.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("inline queue: no handler for %q", t.Type)
	}

	var delay time.Duration
	timeout := q.timeout
	if len(opts) > 0 {
		delay = opts[0].ProcessIn
		if opts[0].Timeout > 0 {
			timeout = opts[0].Timeout
		}
	}

	id := uuid.NewString()
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if delay > 0 {
			time.Sleep(delay)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := h(ctx, t)
		metrics.ObserveTask(t.Type, err)
		if err != nil {
			q.logger.Warn("inline task failed", zap.String("type", t.Type), zap.String("task_id", id), zap.Error(err))
		}
	}()
	return id, nil
}

// Run blocks until ctx is canceled and then waits for in-flight tasks.
func (q *InlineQueue) Run(ctx context.Context) error {
	<-ctx.Done()
	q.Drain()
	return nil
}

// Drain waits for every task enqueued so far to finish.
func (q *InlineQueue) Drain() {
	q.wg.Wait()
}

func (q *InlineQueue) Close() error {
	q.Drain()
	return nil
}
