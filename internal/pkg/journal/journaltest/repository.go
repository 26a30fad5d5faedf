// Package journaltest provides an in-memory JournalRepository for tests.
package journaltest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
)

type Repository struct {
	mu      sync.Mutex
	entries map[string]journal.Entry
}

func NewRepository() *Repository {
	return &Repository{entries: make(map[string]journal.Entry)}
}

var _ repository.JournalRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, e journal.Entry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	r.entries[e.ID] = e
	return e.ID, nil
}

func (r *Repository) Update(_ context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.entries[e.ID]
	if !ok || cur.UserID != e.UserID {
		return journal.ErrEntryNotFound
	}
	r.entries[e.ID] = e
	return nil
}

func (r *Repository) Delete(_ context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.entries[id]
	if !ok || cur.UserID != userID {
		return journal.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*journal.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, journal.ErrEntryNotFound
	}
	return &e, nil
}

func (r *Repository) ListByUser(_ context.Context, userID string, sharedOnly bool, limit int, offset int) ([]journal.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []journal.Entry{}
	for _, e := range r.entries {
		if e.UserID == userID && (!sharedOnly || e.IsShared) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []journal.Entry{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
