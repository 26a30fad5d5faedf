package usecase

import (
	"context"
	"errors"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListEntriesUseCase struct {
	Repo repository.JournalRepository
}

func NewListEntriesUseCase(repo repository.JournalRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{Repo: repo}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error) {
	entries, err := uc.Repo.ListByUser(ctx, userID, false, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return entries, nil
}

// ListSharedEntriesUseCase returns the partner's shared entries. A user
// without a partner gets an empty list.
type ListSharedEntriesUseCase struct {
	Repo     repository.JournalRepository
	Partners shared.PartnerResolver
}

func NewListSharedEntriesUseCase(repo repository.JournalRepository, partners shared.PartnerResolver) *ListSharedEntriesUseCase {
	return &ListSharedEntriesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListSharedEntriesUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error) {
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []journal.Entry{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	entries, err := uc.Repo.ListByUser(ctx, ps.PartnerID, true, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return entries, nil
}
