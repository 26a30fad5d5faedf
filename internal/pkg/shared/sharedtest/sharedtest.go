// Package sharedtest holds fakes of the cross-context ports for use-case tests.
package sharedtest

import (
	"context"
	"sync"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// Partners is an in-memory PartnerResolver. Link registers both directions.
type Partners struct {
	mu     sync.Mutex
	byUser map[string]shared.Partnership
}

func NewPartners() *Partners {
	return &Partners{byUser: make(map[string]shared.Partnership)}
}

func (p *Partners) Link(partnershipID, a, b string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byUser[a] = shared.Partnership{ID: partnershipID, PartnerID: b}
	p.byUser[b] = shared.Partnership{ID: partnershipID, PartnerID: a}
}

func (p *Partners) PartnershipOf(_ context.Context, userID string) (shared.Partnership, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ps, ok := p.byUser[userID]
	if !ok {
		return shared.Partnership{}, shared.ErrNoPartner
	}
	return ps, nil
}

// Delivered is one event captured by Recorder.
type Delivered struct {
	UserID string
	Event  shared.Event
}

// Recorder is a Notifier that remembers every event.
type Recorder struct {
	mu     sync.Mutex
	events []Delivered
}

func (r *Recorder) NotifyUser(_ context.Context, userID string, evt shared.Event) {
	r.mu.Lock()
	r.events = append(r.events, Delivered{UserID: userID, Event: evt})
	r.mu.Unlock()
}

func (r *Recorder) Events() []Delivered {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivered, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the event types delivered to userID, in order.
func (r *Recorder) Types(userID string) []string {
	var out []string
	for _, d := range r.Events() {
		if d.UserID == userID {
			out = append(out, d.Event.Type)
		}
	}
	return out
}
