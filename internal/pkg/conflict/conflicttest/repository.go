// Package conflicttest provides an in-memory ConflictRepository for tests.
package conflicttest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
)

type Repository struct {
	mu       sync.Mutex
	threads  map[string]conflict.Thread
	order    []string
	messages []conflict.Message
}

func NewRepository() *Repository {
	return &Repository{threads: make(map[string]conflict.Thread)}
}

var _ repository.ConflictRepository = (*Repository)(nil)

func (r *Repository) CreateThread(_ context.Context, t conflict.Thread) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	r.threads[t.ID] = t
	r.order = append(r.order, t.ID)
	return t.ID, nil
}

func (r *Repository) FindThread(_ context.Context, id string) (*conflict.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[id]
	if !ok {
		return nil, conflict.ErrThreadNotFound
	}
	return &t, nil
}

func (r *Repository) ListThreads(_ context.Context, partnershipID string, status conflict.Status) ([]conflict.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []conflict.Thread{}
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.threads[r.order[i]]
		if t.PartnershipID == partnershipID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *Repository) AddMessage(_ context.Context, m conflict.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[m.ThreadID]
	if !ok || t.Status != conflict.StatusActive {
		return "", conflict.ErrThreadClosed
	}
	m.ID = uuid.NewString()
	r.messages = append(r.messages, m)
	return m.ID, nil
}

func (r *Repository) ListMessages(_ context.Context, threadID string) ([]conflict.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []conflict.Message{}
	for _, m := range r.messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, to conflict.Status, summary *string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[id]
	if !ok || t.Status != conflict.StatusActive {
		return conflict.ErrInvalidTransition
	}
	t.Status = to
	if summary != nil {
		t.ResolutionSummary = summary
	}
	t.ResolvedAt = &at
	r.threads[id] = t
	return nil
}
