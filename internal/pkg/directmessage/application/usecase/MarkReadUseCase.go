package usecase

import (
	"context"
	"time"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// MarkReadUseCase marks everything the partner sent as read and tells the
// partner when anything changed.
type MarkReadUseCase struct {
	Repo     repository.DirectMessageRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewMarkReadUseCase(repo repository.DirectMessageRepository, partners shared.PartnerResolver, notifier shared.Notifier) *MarkReadUseCase {
	return &MarkReadUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, userID string) (int, error) {
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, userID)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	n, err := uc.Repo.MarkRead(ctx, ps.PartnerID, userID, now)
	if err != nil {
		return 0, shared.WrapPersistence(ErrPersistence, err)
	}
	if n > 0 {
		uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{
			Type: shared.EventDirectMessagesRead,
			Data: map[string]any{"reader_id": userID, "count": n, "read_at": now},
		})
	}
	return n, nil
}
