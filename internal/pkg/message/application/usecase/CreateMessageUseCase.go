package usecase

import (
	"context"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateMessageInput struct {
	UserID                string
	OriginalMessage       string
	TransformedMessage    string
	Context               *string
	CommunicationElements []string
	DeliveryTips          []string
	IsShared              bool
}

type CreateMessageUseCase struct {
	Repo     repository.MessageRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateMessageUseCase(repo repository.MessageRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateMessageUseCase {
	return &CreateMessageUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, in CreateMessageInput) (*message.Message, error) {
	m, err := message.NewMessage(message.Message{
		UserID:                in.UserID,
		OriginalMessage:       in.OriginalMessage,
		TransformedMessage:    in.TransformedMessage,
		Context:               in.Context,
		CommunicationElements: in.CommunicationElements,
		DeliveryTips:          in.DeliveryTips,
		IsShared:              in.IsShared,
	})
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *m)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	m.ID = id
	if m.IsShared {
		shared.NotifyPartner(ctx, uc.Partners, uc.Notifier, m.UserID, shared.Event{
			Type: shared.EventNewMessage,
			Data: map[string]string{"message_id": m.ID},
		})
	}
	return m, nil
}
