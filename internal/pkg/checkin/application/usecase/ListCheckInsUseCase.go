package usecase

import (
	"context"
	"errors"
	"time"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListCheckInsUseCase struct {
	Repo repository.CheckInRepository
	Now  func() time.Time
}

func NewListCheckInsUseCase(repo repository.CheckInRepository) *ListCheckInsUseCase {
	return &ListCheckInsUseCase{Repo: repo, Now: time.Now}
}

func (uc *ListCheckInsUseCase) Execute(ctx context.Context, userID, week string) ([]checkin.Response, error) {
	w, err := resolveWeek(week, uc.Now())
	if err != nil {
		return nil, err
	}
	out, err := uc.Repo.ListByUserWeek(ctx, userID, w, false)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}

// ListPartnerCheckInsUseCase returns the partner's shared answers for a week.
type ListPartnerCheckInsUseCase struct {
	Repo     repository.CheckInRepository
	Partners shared.PartnerResolver
	Now      func() time.Time
}

func NewListPartnerCheckInsUseCase(repo repository.CheckInRepository, partners shared.PartnerResolver) *ListPartnerCheckInsUseCase {
	return &ListPartnerCheckInsUseCase{Repo: repo, Partners: partners, Now: time.Now}
}

func (uc *ListPartnerCheckInsUseCase) Execute(ctx context.Context, userID, week string) ([]checkin.Response, error) {
	w, err := resolveWeek(week, uc.Now())
	if err != nil {
		return nil, err
	}
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []checkin.Response{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	out, err := uc.Repo.ListByUserWeek(ctx, ps.PartnerID, w, true)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
