package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database/databasetest"
	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
)

func TestPgRedeemIsSingleUse(t *testing.T) {
	pool := databasetest.Pool(t)
	repo := NewPgPartnerRepository(pool)
	ctx := context.Background()

	alice := databasetest.CreateUser(t, pool, "alice")
	bob := databasetest.CreateUser(t, pool, "bob")
	carol := databasetest.CreateUser(t, pool, "carol")

	token, err := partner.NewToken()
	require.NoError(t, err)
	now := time.Now().UTC()
	_, err = repo.CreateInvitation(ctx, partner.Invitation{
		InviterID: alice,
		Email:     "bob@example.com",
		Token:     token,
		Status:    partner.StatusPending,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	})
	require.NoError(t, err)

	ps, err := repo.Redeem(ctx, token, bob, now)
	require.NoError(t, err)
	assert.Equal(t, bob, ps.Other(alice))

	_, err = repo.Redeem(ctx, token, carol, now)
	assert.ErrorIs(t, err, partner.ErrInvitationUsed)

	found, err := repo.FindPartnership(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, ps.ID, found.ID)

	_, err = repo.FindPartnership(ctx, carol)
	assert.ErrorIs(t, err, partner.ErrNotPartnered)
}

func TestPgExpireInvitations(t *testing.T) {
	pool := databasetest.Pool(t)
	repo := NewPgPartnerRepository(pool)
	ctx := context.Background()
	alice := databasetest.CreateUser(t, pool, "alice")

	now := time.Now().UTC()
	token, err := partner.NewToken()
	require.NoError(t, err)
	_, err = repo.CreateInvitation(ctx, partner.Invitation{
		InviterID: alice,
		Email:     "late@example.com",
		Token:     token,
		Status:    partner.StatusPending,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	n, err := repo.ExpireInvitations(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	inv, err := repo.FindInvitation(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, partner.StatusExpired, inv.Status)
}

func TestPgDeletePartnershipCascadesSharedRows(t *testing.T) {
	pool := databasetest.Pool(t)
	repo := NewPgPartnerRepository(pool)
	ctx := context.Background()

	alice := databasetest.CreateUser(t, pool, "alice")
	bob := databasetest.CreateUser(t, pool, "bob")

	token, err := partner.NewToken()
	require.NoError(t, err)
	now := time.Now().UTC()
	_, err = repo.CreateInvitation(ctx, partner.Invitation{
		InviterID: alice,
		Email:     "bob@example.com",
		Token:     token,
		Status:    partner.StatusPending,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	})
	require.NoError(t, err)
	ps, err := repo.Redeem(ctx, token, bob, now)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `INSERT INTO conflict_threads (partnership_id, created_by, topic, created_at) VALUES ($1::uuid, $2::uuid, 'Chores', now())`, ps.ID, alice)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO milestones (partnership_id, created_by, title, kind, occurred_on, created_at) VALUES ($1::uuid, $2::uuid, 'First trip', 'other', current_date, now())`, ps.ID, bob)
	require.NoError(t, err)

	require.NoError(t, repo.DeletePartnership(ctx, ps.ID))

	var threads, milestones int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM conflict_threads`).Scan(&threads))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM milestones`).Scan(&milestones))
	assert.Zero(t, threads)
	assert.Zero(t, milestones)

	_, err = repo.FindPartnership(ctx, alice)
	assert.ErrorIs(t, err, partner.ErrNotPartnered)
}
