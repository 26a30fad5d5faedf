package usecase

import (
	"context"
	"errors"
	"slices"

	directmessage "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ListConversationUseCase pages backwards through the chat with the partner.
// Offset 0 is the most recent page; each page reads oldest first.
type ListConversationUseCase struct {
	Repo     repository.DirectMessageRepository
	Partners shared.PartnerResolver
}

func NewListConversationUseCase(repo repository.DirectMessageRepository, partners shared.PartnerResolver) *ListConversationUseCase {
	return &ListConversationUseCase{Repo: repo, Partners: partners}
}

func (uc *ListConversationUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]directmessage.DirectMessage, error) {
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []directmessage.DirectMessage{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	page, err := uc.Repo.Conversation(ctx, userID, ps.PartnerID, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	slices.Reverse(page)
	return page, nil
}
