// Package checkintest provides an in-memory CheckInRepository.
package checkintest

import (
	"context"
	"strconv"
	"sync"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type Repository struct {
	mu    sync.Mutex
	seq   int
	items []checkin.Response
}

func NewRepository() *Repository { return &Repository{} }

var _ repository.CheckInRepository = (*Repository)(nil)

func (r *Repository) Upsert(_ context.Context, resp checkin.Response) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.UserID == resp.UserID && cur.WeekOf.Equal(resp.WeekOf.Time) && cur.PromptID == resp.PromptID {
			resp.ID = cur.ID
			resp.CreatedAt = cur.CreatedAt
			r.items[i] = resp
			return resp.ID, nil
		}
	}
	r.seq++
	resp.ID = "ci-" + strconv.Itoa(r.seq)
	r.items = append(r.items, resp)
	return resp.ID, nil
}

func (r *Repository) ListByUserWeek(_ context.Context, userID string, week shared.Date, sharedOnly bool) ([]checkin.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []checkin.Response{}
	for _, c := range r.items {
		if c.UserID == userID && c.WeekOf.Equal(week.Time) && (!sharedOnly || c.IsShared) {
			out = append(out, c)
		}
	}
	return out, nil
}
