package usecase

import (
	"context"
	"errors"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ResolvePartnerUseCase answers "who is my partner" for the other bounded contexts.
type ResolvePartnerUseCase struct {
	Repo repository.PartnerRepository
}

func NewResolvePartnerUseCase(repo repository.PartnerRepository) *ResolvePartnerUseCase {
	return &ResolvePartnerUseCase{Repo: repo}
}

var _ shared.PartnerResolver = (*ResolvePartnerUseCase)(nil)

func (uc *ResolvePartnerUseCase) PartnershipOf(ctx context.Context, userID string) (shared.Partnership, error) {
	ps, err := uc.Repo.FindPartnership(ctx, userID)
	if errors.Is(err, partner.ErrNotPartnered) {
		return shared.Partnership{}, shared.ErrNoPartner
	}
	if err != nil {
		return shared.Partnership{}, shared.WrapPersistence(ErrPersistence, err)
	}
	return shared.Partnership{ID: ps.ID, PartnerID: ps.Other(userID)}, nil
}
