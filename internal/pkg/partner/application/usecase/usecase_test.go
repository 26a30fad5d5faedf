package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mailport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
	queueadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/adapter"
	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/partnertest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

type captureMailer struct{ sent []mailport.Mail }

func (m *captureMailer) Send(_ context.Context, mail mailport.Mail) error {
	m.sent = append(m.sent, mail)
	return nil
}

func newInvite(t *testing.T, repo *partnertest.Repository, q queueport.Client, inviter string) *CreateInvitationResult {
	t.Helper()
	uc := NewCreateInvitationUseCase(repo, q, "https://app.example", time.Hour, nil)
	res, err := uc.Execute(context.Background(), CreateInvitationInput{InviterID: inviter, Email: "Partner@Example.com"})
	require.NoError(t, err)
	return res
}

func tokenOf(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

func TestCreateInvitationQueuesEmail(t *testing.T) {
	repo := partnertest.NewRepository()
	repo.SetName("alice", "Alice")
	mailer := &captureMailer{}
	q := queueadapter.NewInlineQueue(zap.NewNop())
	q.Register(SendInvitationTaskType, func(ctx context.Context, task queueport.Task) error {
		var p SendInvitationPayload
		if err := json.Unmarshal(task.Payload, &p); err != nil {
			return err
		}
		return NewSendInvitationEmailUseCase(mailer).Execute(ctx, p)
	})

	res := newInvite(t, repo, q, "alice")
	q.Drain()

	assert.True(t, res.EmailQueued)
	assert.Equal(t, "partner@example.com", res.Invitation.Email)
	assert.Equal(t, partner.StatusPending, res.Invitation.Status)
	assert.True(t, strings.HasPrefix(res.Link, "https://app.example/invite/"))
	assert.Len(t, tokenOf(res.Link), 64)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "partner@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Subject, "Alice")
	assert.Contains(t, mailer.sent[0].Body, res.Link)
}

type failingQueue struct{}

func (failingQueue) Enqueue(context.Context, queueport.Task, ...queueport.EnqueueOption) (string, error) {
	return "", errors.New("redis down")
}
func (failingQueue) Close() error { return nil }

func TestCreateInvitationSurvivesQueueFailure(t *testing.T) {
	res := newInvite(t, partnertest.NewRepository(), failingQueue{}, "alice")
	assert.False(t, res.EmailQueued)
	assert.NotEmpty(t, res.Link)
}

func TestCreateInvitationRejectsPartneredInviter(t *testing.T) {
	repo := partnertest.NewRepository()
	res := newInvite(t, repo, failingQueue{}, "alice")
	_, err := NewConnectPartnerUseCase(repo, shared.NopNotifier{}).Execute(context.Background(), tokenOf(res.Link), "bob")
	require.NoError(t, err)

	_, err = NewCreateInvitationUseCase(repo, failingQueue{}, "", time.Hour, nil).Execute(context.Background(), CreateInvitationInput{InviterID: "alice", Email: "c@example.com"})
	assert.ErrorIs(t, err, partner.ErrAlreadyPartnered)

	_, err = NewCreateInvitationUseCase(repo, failingQueue{}, "", time.Hour, nil).Execute(context.Background(), CreateInvitationInput{InviterID: "carol", Email: "not-an-email"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestInvitationRedeemedAtMostOnce(t *testing.T) {
	repo := partnertest.NewRepository()
	rec := &sharedtest.Recorder{}
	token := tokenOf(newInvite(t, repo, failingQueue{}, "alice").Link)
	connect := NewConnectPartnerUseCase(repo, rec)

	ps, err := connect.Execute(context.Background(), token, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", ps.Other("alice"))
	assert.Equal(t, []string{shared.EventPartnerConnected}, rec.Types("alice"))
	assert.Equal(t, []string{shared.EventPartnerConnected}, rec.Types("bob"))

	_, err = connect.Execute(context.Background(), token, "carol")
	assert.ErrorIs(t, err, partner.ErrInvitationUsed)
	assert.ErrorIs(t, err, shared.ErrConflict)
}

func TestConnectRejectsSelfAndUnknownTokens(t *testing.T) {
	repo := partnertest.NewRepository()
	token := tokenOf(newInvite(t, repo, failingQueue{}, "alice").Link)
	connect := NewConnectPartnerUseCase(repo, shared.NopNotifier{})

	_, err := connect.Execute(context.Background(), token, "alice")
	assert.ErrorIs(t, err, partner.ErrSelfInvite)

	_, err = connect.Execute(context.Background(), "nope", "bob")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAcceptInvitationRegistersAndLinks(t *testing.T) {
	repo := partnertest.NewRepository()
	token := tokenOf(newInvite(t, repo, failingQueue{}, "alice").Link)
	var registered []NewAccount
	register := func(_ context.Context, in NewAccount) (string, error) {
		registered = append(registered, in)
		return "bob", nil
	}
	uc := NewAcceptInvitationUseCase(repo, register, shared.NopNotifier{})

	res, err := uc.Execute(context.Background(), AcceptInvitationInput{Token: token, Account: NewAccount{Username: "bob"}})
	require.NoError(t, err)
	assert.Equal(t, "bob", res.UserID)
	assert.Equal(t, "alice", res.Partnership.Other("bob"))

	_, err = uc.Execute(context.Background(), AcceptInvitationInput{Token: token, Account: NewAccount{Username: "carol"}})
	assert.ErrorIs(t, err, partner.ErrInvitationUsed)
	assert.Len(t, registered, 1, "no account is created for a used token")
}

func TestAcceptExpiredInvitation(t *testing.T) {
	repo := partnertest.NewRepository()
	repo.Put(partner.Invitation{ID: "i1", InviterID: "alice", Token: "old", Status: partner.StatusPending, ExpiresAt: time.Now().Add(-time.Minute)})
	uc := NewAcceptInvitationUseCase(repo, func(context.Context, NewAccount) (string, error) {
		t.Fatal("register must not be called")
		return "", nil
	}, shared.NopNotifier{})

	_, err := uc.Execute(context.Background(), AcceptInvitationInput{Token: "old"})
	assert.ErrorIs(t, err, partner.ErrInvitationUsed)

	inv, err := NewGetInvitationUseCase(repo).Execute(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, partner.StatusExpired, inv.Status)
}

func TestExpireInvitations(t *testing.T) {
	repo := partnertest.NewRepository()
	repo.Put(partner.Invitation{Token: "a", Status: partner.StatusPending, ExpiresAt: time.Now().Add(-time.Hour)})
	repo.Put(partner.Invitation{Token: "b", Status: partner.StatusPending, ExpiresAt: time.Now().Add(time.Hour)})

	n, err := NewExpireInvitationsUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	inv, _ := repo.Invitation("a")
	assert.Equal(t, partner.StatusExpired, inv.Status)
}

func TestUnlinkNotifiesFormerPartner(t *testing.T) {
	repo := partnertest.NewRepository()
	token := tokenOf(newInvite(t, repo, failingQueue{}, "alice").Link)
	_, err := NewConnectPartnerUseCase(repo, shared.NopNotifier{}).Execute(context.Background(), token, "bob")
	require.NoError(t, err)

	rec := &sharedtest.Recorder{}
	require.NoError(t, NewUnlinkPartnerUseCase(repo, rec).Execute(context.Background(), "alice"))
	assert.Equal(t, []string{shared.EventPartnerDisconnected}, rec.Types("bob"))

	_, err = NewResolvePartnerUseCase(repo).PartnershipOf(context.Background(), "alice")
	assert.ErrorIs(t, err, shared.ErrNoPartner)

	err = NewUnlinkPartnerUseCase(repo, rec).Execute(context.Background(), "alice")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestResolvePartner(t *testing.T) {
	repo := partnertest.NewRepository()
	token := tokenOf(newInvite(t, repo, failingQueue{}, "alice").Link)
	ps, err := NewConnectPartnerUseCase(repo, shared.NopNotifier{}).Execute(context.Background(), token, "bob")
	require.NoError(t, err)

	got, err := NewResolvePartnerUseCase(repo).PartnershipOf(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, shared.Partnership{ID: ps.ID, PartnerID: "alice"}, got)
}

func TestRenderInvitationDefaultsName(t *testing.T) {
	m := RenderInvitation(SendInvitationPayload{Email: "x@y.z", Link: "https://l"})
	assert.Equal(t, "Your partner invited you to CoupleClarity", m.Subject)
}
