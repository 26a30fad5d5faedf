package usecase

import (
	"context"
	"errors"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListThreadsUseCase struct {
	Repo     repository.ConflictRepository
	Partners shared.PartnerResolver
}

func NewListThreadsUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver) *ListThreadsUseCase {
	return &ListThreadsUseCase{Repo: repo, Partners: partners}
}

// Execute lists the couple's threads, newest first. An empty status lists all.
func (uc *ListThreadsUseCase) Execute(ctx context.Context, userID string, status string) ([]conflict.Thread, error) {
	var filter conflict.Status
	if status != "" {
		st, err := conflict.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = st
	}
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []conflict.Thread{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	out, err := uc.Repo.ListThreads(ctx, ps.ID, filter)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
