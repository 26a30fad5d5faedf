package usecase

import (
	"context"
	"time"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ExpireInvitationsUseCase marks overdue pending invitations expired.
type ExpireInvitationsUseCase struct {
	Repo repository.PartnerRepository
}

func NewExpireInvitationsUseCase(repo repository.PartnerRepository) *ExpireInvitationsUseCase {
	return &ExpireInvitationsUseCase{Repo: repo}
}

func (uc *ExpireInvitationsUseCase) Execute(ctx context.Context) (int64, error) {
	n, err := uc.Repo.ExpireInvitations(ctx, time.Now().UTC())
	if err != nil {
		return 0, shared.WrapPersistence(ErrPersistence, err)
	}
	return n, nil
}
