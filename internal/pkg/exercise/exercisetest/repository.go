// Package exercisetest provides an in-memory ExerciseRepository.
package exercisetest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
)

type Repository struct {
	mu    sync.Mutex
	order []string
	items map[string]exercise.Exercise
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]exercise.Exercise)}
}

var _ repository.ExerciseRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, e exercise.Exercise) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	return e.ID, nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*exercise.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, exercise.ErrExerciseNotFound
	}
	e.Responses = append([]exercise.StepResponse(nil), e.Responses...)
	return &e, nil
}

func (r *Repository) ListByPartnership(_ context.Context, partnershipID string) ([]exercise.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []exercise.Exercise{}
	for i := len(r.order) - 1; i >= 0; i-- {
		if e := r.items[r.order[i]]; e.PartnershipID == partnershipID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *Repository) SaveProgress(_ context.Context, e exercise.Exercise, fromStep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[e.ID]
	if !ok || cur.CurrentStep != fromStep || cur.Status == exercise.StatusCompleted {
		return exercise.ErrStepMismatch
	}
	r.items[e.ID] = e
	return nil
}
