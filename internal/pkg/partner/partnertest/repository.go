// Package partnertest provides an in-memory PartnerRepository for tests.
package partnertest

import (
	"context"
	"strconv"
	"sync"
	"time"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
)

type Repository struct {
	mu           sync.Mutex
	seq          int
	names        map[string]string
	invitations  map[string]partner.Invitation // token -> invitation
	partnerships map[string]partner.Partnership
	members      map[string]string // userID -> partnershipID
}

func NewRepository() *Repository {
	return &Repository{
		names:        make(map[string]string),
		invitations:  make(map[string]partner.Invitation),
		partnerships: make(map[string]partner.Partnership),
		members:      make(map[string]string),
	}
}

var _ repository.PartnerRepository = (*Repository)(nil)

// SetName records a user's display name for invitation lookups.
func (r *Repository) SetName(userID, name string) {
	r.mu.Lock()
	r.names[userID] = name
	r.mu.Unlock()
}

// Invitation returns the stored invitation for token.
func (r *Repository) Invitation(token string) (partner.Invitation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[token]
	return inv, ok
}

// Put stores inv as is, for tests that need a specific state.
func (r *Repository) Put(inv partner.Invitation) {
	r.mu.Lock()
	r.invitations[inv.Token] = inv
	r.mu.Unlock()
}

func (r *Repository) next(prefix string) string {
	r.seq++
	return prefix + strconv.Itoa(r.seq)
}

func (r *Repository) CreateInvitation(_ context.Context, inv partner.Invitation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv.ID = r.next("inv-")
	r.invitations[inv.Token] = inv
	return inv.ID, nil
}

func (r *Repository) FindInvitation(_ context.Context, token string) (*partner.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[token]
	if !ok {
		return nil, partner.ErrInvitationNotFound
	}
	inv.InviterName = r.names[inv.InviterID]
	return &inv, nil
}

func (r *Repository) Redeem(_ context.Context, token string, userID string, now time.Time) (*partner.Partnership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[token]
	if !ok {
		return nil, partner.ErrInvitationNotFound
	}
	if !inv.Redeemable(now) {
		return nil, partner.ErrInvitationUsed
	}
	if inv.InviterID == userID {
		return nil, partner.ErrSelfInvite
	}
	if _, ok := r.members[inv.InviterID]; ok {
		return nil, partner.ErrAlreadyPartnered
	}
	if _, ok := r.members[userID]; ok {
		return nil, partner.ErrAlreadyPartnered
	}
	ps := partner.Partnership{ID: r.next("ps-"), User1ID: inv.InviterID, User2ID: userID, CreatedAt: now}
	r.partnerships[ps.ID] = ps
	r.members[ps.User1ID] = ps.ID
	r.members[ps.User2ID] = ps.ID
	inv.Status = partner.StatusAccepted
	inv.AcceptedBy = &userID
	inv.AcceptedAt = &now
	r.invitations[token] = inv
	return &ps, nil
}

func (r *Repository) FindPartnership(_ context.Context, userID string) (*partner.Partnership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.members[userID]
	if !ok {
		return nil, partner.ErrNotPartnered
	}
	ps := r.partnerships[id]
	return &ps, nil
}

func (r *Repository) FindPartner(ctx context.Context, userID string) (*partner.Partner, error) {
	ps, err := r.FindPartnership(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	other := ps.Other(userID)
	return &partner.Partner{
		PartnershipID: ps.ID,
		Since:         ps.CreatedAt,
		Partner:       partner.Profile{ID: other, Username: other, DisplayName: r.names[other]},
	}, nil
}

func (r *Repository) DeletePartnership(_ context.Context, partnershipID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ps, ok := r.partnerships[partnershipID]
	if !ok {
		return partner.ErrNotPartnered
	}
	delete(r.partnerships, partnershipID)
	delete(r.members, ps.User1ID)
	delete(r.members, ps.User2ID)
	return nil
}

func (r *Repository) ExpireInvitations(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for token, inv := range r.invitations {
		if inv.Status == partner.StatusPending && !now.Before(inv.ExpiresAt) {
			inv.Status = partner.StatusExpired
			r.invitations[token] = inv
			n++
		}
	}
	return n, nil
}
