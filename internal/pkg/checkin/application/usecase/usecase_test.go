package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/checkintest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

// Thursday 2026-10-15.
var thursday = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return thursday }

func TestPromptsCarryTheMondayOfTheWeek(t *testing.T) {
	uc := NewGetPromptsUseCase()
	uc.Now = fixedNow
	out := uc.Execute()
	assert.Equal(t, "2026-10-12", out.WeekOf.String())
	assert.Len(t, out.Prompts, len(checkin.Prompts))
}

func TestSubmitUpsertsPerPromptAndWeek(t *testing.T) {
	ctx := context.Background()
	repo := checkintest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}
	submit := NewSubmitCheckInUseCase(repo, partners, rec)
	submit.Now = fixedNow

	first, err := submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "connection", Answer: "ok", Rating: 3})
	require.NoError(t, err)
	second, err := submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "connection", Answer: "better", Rating: 4, IsShared: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{shared.EventCheckInShared}, rec.Types("bob"))

	list := NewListCheckInsUseCase(repo)
	list.Now = fixedNow
	own, err := list.Execute(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "better", own[0].Answer)

	// Any day of the week addresses the same week.
	own, err = list.Execute(ctx, "alice", "2026-10-18")
	require.NoError(t, err)
	assert.Len(t, own, 1)

	own, err = list.Execute(ctx, "alice", "2026-10-05")
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestPartnerSeesOnlySharedAnswers(t *testing.T) {
	ctx := context.Background()
	repo := checkintest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	submit := NewSubmitCheckInUseCase(repo, partners, shared.NopNotifier{})
	submit.Now = fixedNow

	_, err := submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "stress", Answer: "work", Rating: 2})
	require.NoError(t, err)
	_, err = submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "next_week", Answer: "hike", Rating: 5, IsShared: true})
	require.NoError(t, err)

	partner := NewListPartnerCheckInsUseCase(repo, partners)
	partner.Now = fixedNow
	out, err := partner.Execute(ctx, "bob", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "next_week", out[0].PromptID)
}

func TestSubmitValidation(t *testing.T) {
	submit := NewSubmitCheckInUseCase(checkintest.NewRepository(), sharedtest.NewPartners(), shared.NopNotifier{})
	ctx := context.Background()

	_, err := submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "weather", Answer: "sunny", Rating: 3})
	assert.ErrorIs(t, err, checkin.ErrUnknownPrompt)

	for _, rating := range []int{0, 6} {
		_, err = submit.Execute(ctx, SubmitCheckInInput{UserID: "alice", PromptID: "connection", Answer: "x", Rating: rating})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	}
}
