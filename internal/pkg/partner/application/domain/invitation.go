package partner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pending"
	StatusAccepted InvitationStatus = "accepted"
	StatusExpired  InvitationStatus = "expired"
)

var (
	ErrInvitationNotFound = shared.NotFound("partner: invitation not found")
	// ErrInvitationUsed covers both redeemed and expired tokens; clients fall
	// back to logging in and connecting from an existing account.
	ErrInvitationUsed   = shared.Conflict("partner: invitation has already been used or has expired")
	ErrAlreadyPartnered = shared.Conflict("partner: one of these accounts already has a partner")
	ErrSelfInvite       = shared.Conflict("partner: you cannot accept your own invitation")
	ErrNotPartnered     = shared.NotFound("partner: no partner linked to this account")
)

// Invitation is an e-mailed link that lets the invitee join the inviter.
type Invitation struct {
	ID          string           `json:"id"`
	InviterID   string           `json:"inviter_id"`
	InviterName string           `json:"inviter_name"`
	Email       string           `json:"email"`
	Token       string           `json:"-"`
	Status      InvitationStatus `json:"status"`
	ExpiresAt   time.Time        `json:"expires_at"`
	AcceptedBy  *string          `json:"accepted_by,omitempty"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Redeemable reports whether the invitation can still link an account at now.
func (i Invitation) Redeemable(now time.Time) bool {
	return i.Status == StatusPending && now.Before(i.ExpiresAt)
}

// EffectiveStatus reports pending invitations past their expiry as expired
// even before the sweep has marked them.
func (i Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status == StatusPending && !now.Before(i.ExpiresAt) {
		return StatusExpired
	}
	return i.Status
}

// NewToken returns 32 random bytes, hex encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("partner: generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// InviteLink is the client URL an invitee opens.
func InviteLink(baseURL, token string) string {
	return baseURL + "/invite/" + token
}
