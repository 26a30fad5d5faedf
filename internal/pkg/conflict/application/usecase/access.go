package usecase

import (
	"context"
	"errors"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// threadFor loads a thread of the caller's partnership. Threads of other
// couples, and any thread once the caller is unlinked, read as missing.
func threadFor(ctx context.Context, repo repository.ConflictRepository, partners shared.PartnerResolver, id, userID string) (*conflict.Thread, shared.Partnership, error) {
	ps, err := partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return nil, ps, conflict.ErrThreadNotFound
	}
	if err != nil {
		return nil, ps, shared.WrapPersistence(ErrPersistence, err)
	}
	t, err := repo.FindThread(ctx, id)
	if err != nil {
		return nil, ps, shared.WrapPersistence(ErrPersistence, err)
	}
	if t.PartnershipID != ps.ID {
		return nil, ps, conflict.ErrThreadNotFound
	}
	return t, ps, nil
}
