package usecase

import (
	"context"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListResponsesUseCase struct {
	Repo     repository.MessageRepository
	Partners shared.PartnerResolver
}

func NewListResponsesUseCase(repo repository.MessageRepository, partners shared.PartnerResolver) *ListResponsesUseCase {
	return &ListResponsesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListResponsesUseCase) Execute(ctx context.Context, messageID, userID string) ([]message.Response, error) {
	m, err := visibleMessage(ctx, uc.Repo, uc.Partners, messageID, userID)
	if err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListResponses(ctx, m.ID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
