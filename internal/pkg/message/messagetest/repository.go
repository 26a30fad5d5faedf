// Package messagetest provides an in-memory MessageRepository for tests.
package messagetest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
)

type Repository struct {
	mu        sync.Mutex
	messages  map[string]message.Message
	responses []message.Response
}

func NewRepository() *Repository {
	return &Repository{messages: make(map[string]message.Message)}
}

var _ repository.MessageRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, m message.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.NewString()
	r.messages[m.ID] = m
	return m.ID, nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, message.ErrMessageNotFound
	}
	return &m, nil
}

func (r *Repository) ListByUser(_ context.Context, userID string, sharedOnly bool, limit int, offset int) ([]message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []message.Message{}
	for _, m := range r.messages {
		if m.UserID == userID && (!sharedOnly || m.IsShared) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []message.Message{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repository) CreateResponse(_ context.Context, resp message.Response) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resp.ID = uuid.NewString()
	r.responses = append(r.responses, resp)
	return resp.ID, nil
}

func (r *Repository) ListResponses(_ context.Context, messageID string) ([]message.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []message.Response{}
	for _, resp := range r.responses {
		if resp.MessageID == messageID {
			out = append(out, resp)
		}
	}
	return out, nil
}
