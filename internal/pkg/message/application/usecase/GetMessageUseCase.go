package usecase

import (
	"context"
	"errors"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// GetMessageUseCase returns a message to its author, or to the author's
// partner when it is shared. Everyone else sees 404.
type GetMessageUseCase struct {
	Repo     repository.MessageRepository
	Partners shared.PartnerResolver
}

func NewGetMessageUseCase(repo repository.MessageRepository, partners shared.PartnerResolver) *GetMessageUseCase {
	return &GetMessageUseCase{Repo: repo, Partners: partners}
}

func (uc *GetMessageUseCase) Execute(ctx context.Context, id, userID string) (*message.Message, error) {
	return visibleMessage(ctx, uc.Repo, uc.Partners, id, userID)
}

func visibleMessage(ctx context.Context, repo repository.MessageRepository, partners shared.PartnerResolver, id, userID string) (*message.Message, error) {
	m, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	if m.UserID == userID {
		return m, nil
	}
	ps, err := partners.PartnershipOf(ctx, m.UserID)
	if err != nil && !errors.Is(err, shared.ErrNoPartner) {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	if !m.VisibleTo(userID, ps.PartnerID) {
		return nil, message.ErrMessageNotFound
	}
	return m, nil
}
