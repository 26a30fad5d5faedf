// Package directmessagetest provides an in-memory DirectMessageRepository.
package directmessagetest

import (
	"context"
	"strconv"
	"sync"
	"time"

	directmessage "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
)

type Repository struct {
	mu   sync.Mutex
	msgs []directmessage.DirectMessage
}

func NewRepository() *Repository { return &Repository{} }

var _ repository.DirectMessageRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, m directmessage.DirectMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = "dm-" + strconv.Itoa(len(r.msgs)+1)
	r.msgs = append(r.msgs, m)
	return m.ID, nil
}

func (r *Repository) Conversation(_ context.Context, a, b string, limit int, offset int) ([]directmessage.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []directmessage.DirectMessage{}
	for i := len(r.msgs) - 1; i >= 0; i-- {
		m := r.msgs[i]
		if (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a) {
			out = append(out, m)
		}
	}
	if offset >= len(out) {
		return []directmessage.DirectMessage{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repository) UnreadCount(_ context.Context, recipientID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.msgs {
		if m.RecipientID == recipientID && m.ReadAt == nil {
			n++
		}
	}
	return n, nil
}

func (r *Repository) MarkRead(_ context.Context, senderID, recipientID string, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.msgs {
		m := &r.msgs[i]
		if m.SenderID == senderID && m.RecipientID == recipientID && m.ReadAt == nil {
			t := at
			m.ReadAt = &t
			n++
		}
	}
	return n, nil
}
