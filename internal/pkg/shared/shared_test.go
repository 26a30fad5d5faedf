package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestWrapPersistenceKeepsDomainKinds(t *testing.T) {
	sentinel := shared.Persistence("journal use case persistence error")

	err := shared.WrapPersistence(sentinel, shared.NotFound("journal: entry not found"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NotErrorIs(t, err, shared.ErrPersistence)

	err = shared.WrapPersistence(sentinel, errors.New("connection reset"))
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, shared.ErrPersistence)

	assert.NoError(t, shared.WrapPersistence(sentinel, nil))
}

func TestNoPartnerIsConflict(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", shared.ErrNoPartner), shared.ErrConflict)
}

func TestNotifyPartner(t *testing.T) {
	partners := sharedtest.NewPartners()
	partners.Link("p1", "alice", "bob")
	rec := &sharedtest.Recorder{}

	shared.NotifyPartner(context.Background(), partners, rec, "alice", shared.Event{Type: shared.EventNewMilestone})
	shared.NotifyPartner(context.Background(), partners, rec, "loner", shared.Event{Type: shared.EventNewMilestone})

	assert.Equal(t, []string{shared.EventNewMilestone}, rec.Types("bob"))
	assert.Len(t, rec.Events(), 1)
}

func TestRequirePartnership(t *testing.T) {
	partners := sharedtest.NewPartners()
	partners.Link("p1", "alice", "bob")
	sentinel := shared.Persistence("x")

	ps, err := shared.RequirePartnership(context.Background(), partners, sentinel, "bob")
	assert.NoError(t, err)
	assert.Equal(t, shared.Partnership{ID: "p1", PartnerID: "alice"}, ps)

	_, err = shared.RequirePartnership(context.Background(), partners, sentinel, "loner")
	assert.ErrorIs(t, err, shared.ErrNoPartner)
}

func TestWeekOfIsMonday(t *testing.T) {
	sunday := time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-12", shared.WeekOf(sunday).String())

	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-12", shared.WeekOf(monday).String())

	// 23:30 on Sunday in UTC-5 is already Monday in UTC.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2026-10-19", shared.WeekOf(time.Date(2026, 10, 18, 23, 30, 0, 0, est)).String())
}

func TestDateJSON(t *testing.T) {
	d, err := shared.ParseDate("2024-02-29")
	require.NoError(t, err)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-02-29"`, string(b))

	var back shared.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	_, err = shared.ParseDate("29/02/2024")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
