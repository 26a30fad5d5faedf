package repository

import (
	"context"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
)

// JournalRepository persists journal entries. Lookups of unknown ids report
// journal.ErrEntryNotFound.
type JournalRepository interface {
	Create(ctx context.Context, e journal.Entry) (string, error)
	Update(ctx context.Context, e journal.Entry) error
	Delete(ctx context.Context, id string, userID string) error
	FindByID(ctx context.Context, id string) (*journal.Entry, error)
	ListByUser(ctx context.Context, userID string, sharedOnly bool, limit int, offset int) ([]journal.Entry, error)
}
