package usecase

import (
	"context"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// DeleteMilestoneUseCase removes a milestone. Only its creator may delete it.
type DeleteMilestoneUseCase struct {
	Repo repository.MilestoneRepository
}

func NewDeleteMilestoneUseCase(repo repository.MilestoneRepository) *DeleteMilestoneUseCase {
	return &DeleteMilestoneUseCase{Repo: repo}
}

func (uc *DeleteMilestoneUseCase) Execute(ctx context.Context, id, userID string) error {
	if err := uc.Repo.Delete(ctx, id, userID); err != nil {
		return shared.WrapPersistence(ErrPersistence, err)
	}
	return nil
}
