package usecase

import (
	"context"
	"time"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// redeem links userID through token and tells both members.
func redeem(ctx context.Context, repo repository.PartnerRepository, notifier shared.Notifier, token, userID string) (*partner.Partnership, error) {
	ps, err := repo.Redeem(ctx, token, userID, time.Now().UTC())
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	for _, member := range []string{ps.User1ID, ps.User2ID} {
		notifier.NotifyUser(ctx, member, shared.Event{
			Type: shared.EventPartnerConnected,
			Data: map[string]string{"partnership_id": ps.ID, "partner_id": ps.Other(member)},
		})
	}
	return ps, nil
}
