package usecase

import (
	"context"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateEntryInput struct {
	UserID   string
	Title    string
	Content  string
	Mood     *string
	IsShared bool
}

type CreateEntryUseCase struct {
	Repo     repository.JournalRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateEntryUseCase(repo repository.JournalRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateEntryUseCase {
	return &CreateEntryUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateEntryUseCase) Execute(ctx context.Context, in CreateEntryInput) (*journal.Entry, error) {
	e, err := journal.NewEntry(journal.Entry{
		UserID:   in.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Mood:     in.Mood,
		IsShared: in.IsShared,
	})
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *e)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	e.ID = id
	if e.IsShared {
		notifyShared(ctx, uc.Partners, uc.Notifier, e)
	}
	return e, nil
}

func notifyShared(ctx context.Context, partners shared.PartnerResolver, notifier shared.Notifier, e *journal.Entry) {
	shared.NotifyPartner(ctx, partners, notifier, e.UserID, shared.Event{
		Type: shared.EventJournalShared,
		Data: map[string]string{"entry_id": e.ID, "title": e.Title},
	})
}
