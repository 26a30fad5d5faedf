// Package appreciationtest provides an in-memory AppreciationRepository.
package appreciationtest

import (
	"context"
	"strconv"
	"sync"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/port"
)

type Repository struct {
	mu    sync.Mutex
	items []appreciation.Appreciation
}

func NewRepository() *Repository { return &Repository{} }

var _ repository.AppreciationRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, a appreciation.Appreciation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = "ap-" + strconv.Itoa(len(r.items)+1)
	r.items = append(r.items, a)
	return a.ID, nil
}

func (r *Repository) ListReceived(_ context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error) {
	return r.filter(func(a appreciation.Appreciation) bool { return a.ToUserID == userID }, limit, offset), nil
}

func (r *Repository) ListSent(_ context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error) {
	return r.filter(func(a appreciation.Appreciation) bool { return a.FromUserID == userID }, limit, offset), nil
}

func (r *Repository) filter(keep func(appreciation.Appreciation) bool, limit, offset int) []appreciation.Appreciation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []appreciation.Appreciation{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if keep(r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	if offset >= len(out) {
		return []appreciation.Appreciation{}
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
