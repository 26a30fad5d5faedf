package usecase

import (
	"context"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type GetPartnerUseCase struct {
	Repo repository.PartnerRepository
}

func NewGetPartnerUseCase(repo repository.PartnerRepository) *GetPartnerUseCase {
	return &GetPartnerUseCase{Repo: repo}
}

func (uc *GetPartnerUseCase) Execute(ctx context.Context, userID string) (*partner.Partner, error) {
	p, err := uc.Repo.FindPartner(ctx, userID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return p, nil
}
