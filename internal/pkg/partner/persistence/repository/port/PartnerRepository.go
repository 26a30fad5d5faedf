package repository

import (
	"context"
	"time"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
)

// PartnerRepository persists invitations and partnerships.
type PartnerRepository interface {
	CreateInvitation(ctx context.Context, inv partner.Invitation) (string, error)
	// FindInvitation reports partner.ErrInvitationNotFound for unknown tokens.
	FindInvitation(ctx context.Context, token string) (*partner.Invitation, error)
	// Redeem atomically marks the invitation accepted by userID and links
	// userID with the inviter. Nothing changes when any check fails.
	Redeem(ctx context.Context, token string, userID string, now time.Time) (*partner.Partnership, error)
	// FindPartnership reports partner.ErrNotPartnered when userID has none.
	FindPartnership(ctx context.Context, userID string) (*partner.Partnership, error)
	FindPartner(ctx context.Context, userID string) (*partner.Partner, error)
	DeletePartnership(ctx context.Context, partnershipID string) error
	ExpireInvitations(ctx context.Context, now time.Time) (int64, error)
}
