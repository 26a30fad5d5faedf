package repository

import (
	"context"
	"time"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
)

// ConflictRepository persists threads and their messages. AddMessage and
// UpdateStatus only succeed while the thread is still active, reporting
// conflict.ErrThreadClosed and conflict.ErrInvalidTransition otherwise.
type ConflictRepository interface {
	CreateThread(ctx context.Context, t conflict.Thread) (string, error)
	FindThread(ctx context.Context, id string) (*conflict.Thread, error)
	ListThreads(ctx context.Context, partnershipID string, status conflict.Status) ([]conflict.Thread, error)
	AddMessage(ctx context.Context, m conflict.Message) (string, error)
	ListMessages(ctx context.Context, threadID string) ([]conflict.Message, error)
	UpdateStatus(ctx context.Context, id string, to conflict.Status, summary *string, at time.Time) error
}
