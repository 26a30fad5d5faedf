package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/directmessagetest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestConversationFlow(t *testing.T) {
	ctx := context.Background()
	repo := directmessagetest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}
	send := NewSendDirectMessageUseCase(repo, partners, rec)

	for _, step := range []struct{ from, text string }{
		{"alice", "hi"}, {"bob", "hey"}, {"alice", "dinner?"}, {"alice", "at 7"},
	} {
		_, err := send.Execute(ctx, step.from, step.text)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{shared.EventNewDirectMessage, shared.EventNewDirectMessage, shared.EventNewDirectMessage}, rec.Types("bob"))

	list := NewListConversationUseCase(repo, partners)
	latest, err := list.Execute(ctx, "bob", 2, 0)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "dinner?", latest[0].Content)
	assert.Equal(t, "at 7", latest[1].Content)

	older, err := list.Execute(ctx, "bob", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "hi", older[0].Content)

	unread := NewUnreadCountUseCase(repo)
	n, err := unread.Execute(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	marked, err := NewMarkReadUseCase(repo, partners, rec).Execute(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, marked)
	assert.Contains(t, rec.Types("alice"), shared.EventDirectMessagesRead)

	n, err = unread.Execute(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = unread.Execute(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSendRequiresPartner(t *testing.T) {
	send := NewSendDirectMessageUseCase(directmessagetest.NewRepository(), sharedtest.NewPartners(), shared.NopNotifier{})
	_, err := send.Execute(context.Background(), "alice", "anyone?")
	assert.ErrorIs(t, err, shared.ErrNoPartner)
}

func TestSendRejectsBlankContent(t *testing.T) {
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	_, err := NewSendDirectMessageUseCase(directmessagetest.NewRepository(), partners, shared.NopNotifier{}).
		Execute(context.Background(), "alice", "  ")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
