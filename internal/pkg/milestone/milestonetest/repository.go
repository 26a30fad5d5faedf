// Package milestonetest provides an in-memory MilestoneRepository.
package milestonetest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
)

type Repository struct {
	mu    sync.Mutex
	items map[string]milestone.Milestone
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]milestone.Milestone)}
}

var _ repository.MilestoneRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, m milestone.Milestone) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.NewString()
	r.items[m.ID] = m
	return m.ID, nil
}

func (r *Repository) ListByPartnership(_ context.Context, partnershipID string) ([]milestone.Milestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []milestone.Milestone{}
	for _, m := range r.items {
		if m.PartnershipID == partnershipID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.After(out[j].OccurredOn.Time) })
	return out, nil
}

func (r *Repository) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok || m.CreatedBy != userID {
		return milestone.ErrMilestoneNotFound
	}
	delete(r.items, id)
	return nil
}
