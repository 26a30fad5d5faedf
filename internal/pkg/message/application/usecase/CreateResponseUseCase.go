package usecase

import (
	"context"
	"strings"
	"time"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateResponseInput struct {
	MessageID string
	UserID    string
	Content   string
}

// CreateResponseUseCase lets the partner of an author answer a shared message.
type CreateResponseUseCase struct {
	Repo     repository.MessageRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateResponseUseCase(repo repository.MessageRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateResponseUseCase {
	return &CreateResponseUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateResponseUseCase) Execute(ctx context.Context, in CreateResponseInput) (*message.Response, error) {
	content := strings.TrimSpace(in.Content)
	if err := message.CheckText("content", content); err != nil {
		return nil, err
	}
	m, err := visibleMessage(ctx, uc.Repo, uc.Partners, in.MessageID, in.UserID)
	if err != nil {
		return nil, err
	}
	if m.UserID == in.UserID {
		return nil, message.ErrOwnMessage
	}
	resp := message.Response{
		MessageID: m.ID,
		UserID:    in.UserID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	id, err := uc.Repo.CreateResponse(ctx, resp)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	resp.ID = id
	uc.Notifier.NotifyUser(ctx, m.UserID, shared.Event{
		Type: shared.EventNewResponse,
		Data: map[string]string{"message_id": m.ID, "response_id": id},
	})
	return &resp, nil
}
