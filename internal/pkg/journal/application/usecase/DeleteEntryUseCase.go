package usecase

import (
	"context"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type DeleteEntryUseCase struct {
	Repo repository.JournalRepository
}

func NewDeleteEntryUseCase(repo repository.JournalRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{Repo: repo}
}

func (uc *DeleteEntryUseCase) Execute(ctx context.Context, id, userID string) error {
	if err := uc.Repo.Delete(ctx, id, userID); err != nil {
		return shared.WrapPersistence(ErrPersistence, err)
	}
	return nil
}
