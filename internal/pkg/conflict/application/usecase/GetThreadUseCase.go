package usecase

import (
	"context"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type GetThreadUseCase struct {
	Repo     repository.ConflictRepository
	Partners shared.PartnerResolver
}

func NewGetThreadUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver) *GetThreadUseCase {
	return &GetThreadUseCase{Repo: repo, Partners: partners}
}

func (uc *GetThreadUseCase) Execute(ctx context.Context, id, userID string) (*conflict.Thread, error) {
	t, _, err := threadFor(ctx, uc.Repo, uc.Partners, id, userID)
	return t, err
}

type ListThreadMessagesUseCase struct {
	Repo     repository.ConflictRepository
	Partners shared.PartnerResolver
}

func NewListThreadMessagesUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver) *ListThreadMessagesUseCase {
	return &ListThreadMessagesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListThreadMessagesUseCase) Execute(ctx context.Context, threadID, userID string) ([]conflict.Message, error) {
	t, _, err := threadFor(ctx, uc.Repo, uc.Partners, threadID, userID)
	if err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListMessages(ctx, t.ID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
