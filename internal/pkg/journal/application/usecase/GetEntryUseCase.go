package usecase

import (
	"context"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
)

type GetEntryUseCase struct {
	Repo repository.JournalRepository
}

func NewGetEntryUseCase(repo repository.JournalRepository) *GetEntryUseCase {
	return &GetEntryUseCase{Repo: repo}
}

func (uc *GetEntryUseCase) Execute(ctx context.Context, id, userID string) (*journal.Entry, error) {
	return ownedEntry(ctx, uc.Repo, id, userID)
}
