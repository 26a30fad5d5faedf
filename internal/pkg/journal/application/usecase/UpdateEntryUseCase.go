package usecase

import (
	"context"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type UpdateEntryInput struct {
	ID     string
	UserID string
	Patch  journal.Patch
}

// UpdateEntryUseCase edits an entry owned by the caller. Entries of other
// users read as missing.
type UpdateEntryUseCase struct {
	Repo     repository.JournalRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewUpdateEntryUseCase(repo repository.JournalRepository, partners shared.PartnerResolver, notifier shared.Notifier) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *UpdateEntryUseCase) Execute(ctx context.Context, in UpdateEntryInput) (*journal.Entry, error) {
	cur, err := ownedEntry(ctx, uc.Repo, in.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	next, err := cur.Apply(in.Patch)
	if err != nil {
		return nil, err
	}
	if err := uc.Repo.Update(ctx, *next); err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	if next.IsShared {
		notifyShared(ctx, uc.Partners, uc.Notifier, next)
	}
	return next, nil
}

func ownedEntry(ctx context.Context, repo repository.JournalRepository, id, userID string) (*journal.Entry, error) {
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	if e.UserID != userID {
		return nil, journal.ErrEntryNotFound
	}
	return e, nil
}
