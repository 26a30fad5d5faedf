package usecase

import (
	"context"
	"time"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type AddMessageInput struct {
	ThreadID  string
	UserID    string
	Content   string
	Transform bool
}

// AddMessageUseCase appends to an active thread, optionally storing an AI
// rewrite next to the original wording.
type AddMessageUseCase struct {
	Repo     repository.ConflictRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
	AI       aiport.Transformer
}

func NewAddMessageUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver, notifier shared.Notifier, ai aiport.Transformer) *AddMessageUseCase {
	return &AddMessageUseCase{Repo: repo, Partners: partners, Notifier: notifier, AI: ai}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, in AddMessageInput) (*conflict.Message, error) {
	content, err := conflict.CheckContent(in.Content)
	if err != nil {
		return nil, err
	}
	t, ps, err := threadFor(ctx, uc.Repo, uc.Partners, in.ThreadID, in.UserID)
	if err != nil {
		return nil, err
	}
	if t.Status != conflict.StatusActive {
		return nil, conflict.ErrThreadClosed
	}

	m := conflict.Message{ThreadID: t.ID, UserID: in.UserID, Content: content}
	if in.Transform {
		out, err := uc.AI.Transform(ctx, aiport.TransformRequest{
			Message: content,
			Context: "Ongoing conflict discussion about: " + t.Topic,
		})
		if err != nil {
			return nil, err
		}
		m.TransformedContent = &out.TransformedMessage
	}
	m.CreatedAt = time.Now().UTC()

	id, err := uc.Repo.AddMessage(ctx, m)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	m.ID = id
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{
		Type: shared.EventConflictMessage,
		Data: map[string]string{"thread_id": t.ID, "message_id": id},
	})
	return &m, nil
}
