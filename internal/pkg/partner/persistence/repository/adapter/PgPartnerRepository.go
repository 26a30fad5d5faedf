package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database"
	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
)

type PgPartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPgPartnerRepository(pool *pgxpool.Pool) *PgPartnerRepository {
	return &PgPartnerRepository{pool: pool}
}

var _ repository.PartnerRepository = (*PgPartnerRepository)(nil)

func (r *PgPartnerRepository) CreateInvitation(ctx context.Context, inv partner.Invitation) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO partner_invitations (inviter_id, email, token, status, expires_at, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, inv.InviterID, inv.Email, inv.Token, inv.Status, inv.ExpiresAt, inv.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgPartnerRepository) FindInvitation(ctx context.Context, token string) (*partner.Invitation, error) {
	var inv partner.Invitation
	err := r.pool.QueryRow(ctx, `
		SELECT i.id::text, i.inviter_id::text, u.display_name, i.email, i.token, i.status,
		       i.expires_at, i.accepted_by::text, i.accepted_at, i.created_at
		FROM partner_invitations i
		JOIN users u ON u.id = i.inviter_id
		WHERE i.token = $1
	`, token).Scan(&inv.ID, &inv.InviterID, &inv.InviterName, &inv.Email, &inv.Token, &inv.Status,
		&inv.ExpiresAt, &inv.AcceptedBy, &inv.AcceptedAt, &inv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, partner.ErrInvitationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PgPartnerRepository) Redeem(ctx context.Context, token string, userID string, now time.Time) (*partner.Partnership, error) {
	var ps *partner.Partnership
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var inviterID string
		err := tx.QueryRow(ctx, `
			UPDATE partner_invitations
			SET status = 'accepted', accepted_by = $2::uuid, accepted_at = $3
			WHERE token = $1 AND status = 'pending' AND expires_at > $3
			RETURNING inviter_id::text
		`, token, userID, now).Scan(&inviterID)
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM partner_invitations WHERE token = $1)`, token).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return partner.ErrInvitationNotFound
			}
			return partner.ErrInvitationUsed
		}
		if err != nil {
			return err
		}
		if inviterID == userID {
			return partner.ErrSelfInvite
		}

		p := partner.Partnership{User1ID: inviterID, User2ID: userID, CreatedAt: now}
		if err := tx.QueryRow(ctx, `
			INSERT INTO partnerships (user1_id, user2_id, created_at)
			VALUES ($1::uuid, $2::uuid, $3)
			RETURNING id::text
		`, p.User1ID, p.User2ID, p.CreatedAt).Scan(&p.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO partnership_members (user_id, partnership_id)
			VALUES ($1::uuid, $3::uuid), ($2::uuid, $3::uuid)
		`, p.User1ID, p.User2ID, p.ID); err != nil {
			if _, ok := database.UniqueViolation(err); ok {
				return partner.ErrAlreadyPartnered
			}
			return err
		}
		ps = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PgPartnerRepository) FindPartnership(ctx context.Context, userID string) (*partner.Partnership, error) {
	var p partner.Partnership
	err := r.pool.QueryRow(ctx, `
		SELECT p.id::text, p.user1_id::text, p.user2_id::text, p.created_at
		FROM partnership_members m
		JOIN partnerships p ON p.id = m.partnership_id
		WHERE m.user_id = $1::uuid
	`, userID).Scan(&p.ID, &p.User1ID, &p.User2ID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, partner.ErrNotPartnered
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgPartnerRepository) FindPartner(ctx context.Context, userID string) (*partner.Partner, error) {
	var out partner.Partner
	err := r.pool.QueryRow(ctx, `
		SELECT p.id::text, p.created_at, u.id::text, u.username, u.display_name, u.avatar_url
		FROM partnership_members m
		JOIN partnerships p ON p.id = m.partnership_id
		JOIN users u ON u.id = CASE WHEN p.user1_id = m.user_id THEN p.user2_id ELSE p.user1_id END
		WHERE m.user_id = $1::uuid
	`, userID).Scan(&out.PartnershipID, &out.Since, &out.Partner.ID, &out.Partner.Username, &out.Partner.DisplayName, &out.Partner.AvatarURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, partner.ErrNotPartnered
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePartnership removes the partnership; members and shared rows keyed
// by partnership_id cascade.
func (r *PgPartnerRepository) DeletePartnership(ctx context.Context, partnershipID string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM partnerships WHERE id = $1::uuid`, partnershipID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return partner.ErrNotPartnered
	}
	return nil
}

func (r *PgPartnerRepository) ExpireInvitations(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.pool.Exec(ctx, `
		UPDATE partner_invitations SET status = 'expired'
		WHERE status = 'pending' AND expires_at <= $1
	`, now)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
