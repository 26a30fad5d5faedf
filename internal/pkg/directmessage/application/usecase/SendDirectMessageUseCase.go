package usecase

import (
	"context"

	directmessage "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type SendDirectMessageUseCase struct {
	Repo     repository.DirectMessageRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewSendDirectMessageUseCase(repo repository.DirectMessageRepository, partners shared.PartnerResolver, notifier shared.Notifier) *SendDirectMessageUseCase {
	return &SendDirectMessageUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *SendDirectMessageUseCase) Execute(ctx context.Context, senderID, content string) (*directmessage.DirectMessage, error) {
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, senderID)
	if err != nil {
		return nil, err
	}
	m, err := directmessage.NewDirectMessage(senderID, ps.PartnerID, content)
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *m)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	m.ID = id
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{Type: shared.EventNewDirectMessage, Data: m})
	return m, nil
}
