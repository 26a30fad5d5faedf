package usecase

import (
	"context"
	"strings"
	"time"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type GetInvitationUseCase struct {
	Repo repository.PartnerRepository
	now  func() time.Time
}

func NewGetInvitationUseCase(repo repository.PartnerRepository) *GetInvitationUseCase {
	return &GetInvitationUseCase{Repo: repo, now: time.Now}
}

func (uc *GetInvitationUseCase) Execute(ctx context.Context, token string) (*partner.Invitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, partner.ErrInvitationNotFound
	}
	inv, err := uc.Repo.FindInvitation(ctx, token)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	inv.Status = inv.EffectiveStatus(uc.now())
	return inv, nil
}
