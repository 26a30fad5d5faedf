package usecase

import (
	"context"
	"errors"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListMilestonesUseCase struct {
	Repo     repository.MilestoneRepository
	Partners shared.PartnerResolver
}

func NewListMilestonesUseCase(repo repository.MilestoneRepository, partners shared.PartnerResolver) *ListMilestonesUseCase {
	return &ListMilestonesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListMilestonesUseCase) Execute(ctx context.Context, userID string) ([]milestone.Milestone, error) {
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []milestone.Milestone{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	out, err := uc.Repo.ListByPartnership(ctx, ps.ID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
