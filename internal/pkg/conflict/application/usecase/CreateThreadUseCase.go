package usecase

import (
	"context"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateThreadInput struct {
	UserID      string
	Topic       string
	Description *string
}

type CreateThreadUseCase struct {
	Repo     repository.ConflictRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateThreadUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateThreadUseCase {
	return &CreateThreadUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateThreadUseCase) Execute(ctx context.Context, in CreateThreadInput) (*conflict.Thread, error) {
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, in.UserID)
	if err != nil {
		return nil, err
	}
	t, err := conflict.NewThread(ps.ID, in.UserID, in.Topic, in.Description)
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.CreateThread(ctx, *t)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	t.ID = id
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{
		Type: shared.EventConflictThreadCreated,
		Data: map[string]string{"thread_id": id, "topic": t.Topic},
	})
	return t, nil
}
