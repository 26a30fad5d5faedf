package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database/databasetest"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
)

func TestPgConflictClosedThreadRejectsMessages(t *testing.T) {
	pool := databasetest.Pool(t)
	repo := NewPgConflictRepository(pool)
	ctx := context.Background()
	alice := databasetest.CreateUser(t, pool, "alice")
	bob := databasetest.CreateUser(t, pool, "bob")

	var psID string
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO partnerships (user1_id, user2_id, created_at) VALUES ($1::uuid, $2::uuid, now())
		RETURNING id::text
	`, alice, bob).Scan(&psID))

	now := time.Now().UTC()
	id, err := repo.CreateThread(ctx, conflict.Thread{PartnershipID: psID, CreatedBy: alice, Topic: "dishes", Status: conflict.StatusActive, CreatedAt: now})
	require.NoError(t, err)

	_, err = repo.AddMessage(ctx, conflict.Message{ThreadID: id, UserID: bob, Content: "I feel tired", CreatedAt: now})
	require.NoError(t, err)

	summary := "agreed on a rota"
	require.NoError(t, repo.UpdateStatus(ctx, id, conflict.StatusResolved, &summary, now))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, id, conflict.StatusAbandoned, nil, now), conflict.ErrInvalidTransition)

	_, err = repo.AddMessage(ctx, conflict.Message{ThreadID: id, UserID: alice, Content: "late", CreatedAt: now})
	assert.ErrorIs(t, err, conflict.ErrThreadClosed)

	th, err := repo.FindThread(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, conflict.StatusResolved, th.Status)
	require.NotNil(t, th.ResolutionSummary)
	assert.Equal(t, summary, *th.ResolutionSummary)

	resolved, err := repo.ListThreads(ctx, psID, conflict.StatusResolved)
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
	active, err := repo.ListThreads(ctx, psID, conflict.StatusActive)
	require.NoError(t, err)
	assert.Empty(t, active)
}
