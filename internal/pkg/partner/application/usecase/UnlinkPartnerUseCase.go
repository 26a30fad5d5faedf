package usecase

import (
	"context"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// UnlinkPartnerUseCase dissolves the user's partnership.
type UnlinkPartnerUseCase struct {
	Repo     repository.PartnerRepository
	Notifier shared.Notifier
}

func NewUnlinkPartnerUseCase(repo repository.PartnerRepository, notifier shared.Notifier) *UnlinkPartnerUseCase {
	return &UnlinkPartnerUseCase{Repo: repo, Notifier: notifier}
}

func (uc *UnlinkPartnerUseCase) Execute(ctx context.Context, userID string) error {
	ps, err := uc.Repo.FindPartnership(ctx, userID)
	if err != nil {
		return shared.WrapPersistence(ErrPersistence, err)
	}
	if err := uc.Repo.DeletePartnership(ctx, ps.ID); err != nil {
		return shared.WrapPersistence(ErrPersistence, err)
	}
	uc.Notifier.NotifyUser(ctx, ps.Other(userID), shared.Event{
		Type: shared.EventPartnerDisconnected,
		Data: map[string]string{"partnership_id": ps.ID},
	})
	return nil
}
