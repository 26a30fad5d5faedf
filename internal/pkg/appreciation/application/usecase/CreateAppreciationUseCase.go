package usecase

import (
	"context"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateAppreciationUseCase struct {
	Repo     repository.AppreciationRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateAppreciationUseCase(repo repository.AppreciationRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateAppreciationUseCase {
	return &CreateAppreciationUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateAppreciationUseCase) Execute(ctx context.Context, userID, content string) (*appreciation.Appreciation, error) {
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, userID)
	if err != nil {
		return nil, err
	}
	a, err := appreciation.NewAppreciation(userID, ps.PartnerID, content)
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *a)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	a.ID = id
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{Type: shared.EventNewAppreciation, Data: a})
	return a, nil
}
