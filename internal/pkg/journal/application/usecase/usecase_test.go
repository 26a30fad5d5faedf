package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/journaltest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestSharedEntryReachesPartner(t *testing.T) {
	ctx := context.Background()
	repo := journaltest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}

	create := NewCreateEntryUseCase(repo, partners, rec)
	_, err := create.Execute(ctx, CreateEntryInput{UserID: "alice", Title: "Today", Content: "Felt heard", IsShared: true})
	require.NoError(t, err)
	_, err = create.Execute(ctx, CreateEntryInput{UserID: "alice", Title: "Private", Content: "Just for me"})
	require.NoError(t, err)

	assert.Equal(t, []string{shared.EventJournalShared}, rec.Types("bob"))

	sharedList, err := NewListSharedEntriesUseCase(repo, partners).Execute(ctx, "bob", 50, 0)
	require.NoError(t, err)
	require.Len(t, sharedList, 1)
	assert.Equal(t, "Today", sharedList[0].Title)

	own, err := NewListEntriesUseCase(repo).Execute(ctx, "alice", 50, 0)
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func TestListSharedWithoutPartnerIsEmpty(t *testing.T) {
	entries, err := NewListSharedEntriesUseCase(journaltest.NewRepository(), sharedtest.NewPartners()).
		Execute(context.Background(), "carol", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestUpdateEntry(t *testing.T) {
	ctx := context.Background()
	repo := journaltest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}

	e, err := NewCreateEntryUseCase(repo, partners, rec).Execute(ctx, CreateEntryInput{UserID: "alice", Title: "Draft", Content: "..."})
	require.NoError(t, err)
	assert.Empty(t, rec.Events())

	update := NewUpdateEntryUseCase(repo, partners, rec)
	share := true
	title := "Final"
	got, err := update.Execute(ctx, UpdateEntryInput{ID: e.ID, UserID: "alice", Patch: journal.Patch{Title: &title, IsShared: &share}})
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "...", got.Content)
	assert.Equal(t, []string{shared.EventJournalShared}, rec.Types("bob"))

	_, err = update.Execute(ctx, UpdateEntryInput{ID: e.ID, UserID: "bob", Patch: journal.Patch{Title: &title}})
	assert.ErrorIs(t, err, journal.ErrEntryNotFound)

	empty := "  "
	_, err = update.Execute(ctx, UpdateEntryInput{ID: e.ID, UserID: "alice", Patch: journal.Patch{Content: &empty}})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestGetAndDeleteAreOwnerOnly(t *testing.T) {
	ctx := context.Background()
	repo := journaltest.NewRepository()
	e, err := NewCreateEntryUseCase(repo, sharedtest.NewPartners(), shared.NopNotifier{}).
		Execute(ctx, CreateEntryInput{UserID: "alice", Title: "t", Content: "c", IsShared: true})
	require.NoError(t, err)

	_, err = NewGetEntryUseCase(repo).Execute(ctx, e.ID, "bob")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	del := NewDeleteEntryUseCase(repo)
	assert.ErrorIs(t, del.Execute(ctx, e.ID, "bob"), shared.ErrNotFound)
	require.NoError(t, del.Execute(ctx, e.ID, "alice"))

	_, err = NewGetEntryUseCase(repo).Execute(ctx, e.ID, "alice")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
