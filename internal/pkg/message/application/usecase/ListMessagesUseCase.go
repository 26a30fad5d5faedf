package usecase

import (
	"context"
	"errors"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type ListMessagesUseCase struct {
	Repo repository.MessageRepository
}

func NewListMessagesUseCase(repo repository.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]message.Message, error) {
	out, err := uc.Repo.ListByUser(ctx, userID, false, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}

// ListPartnerMessagesUseCase lists the messages the partner chose to share.
type ListPartnerMessagesUseCase struct {
	Repo     repository.MessageRepository
	Partners shared.PartnerResolver
}

func NewListPartnerMessagesUseCase(repo repository.MessageRepository, partners shared.PartnerResolver) *ListPartnerMessagesUseCase {
	return &ListPartnerMessagesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListPartnerMessagesUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]message.Message, error) {
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []message.Message{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	out, err := uc.Repo.ListByUser(ctx, ps.PartnerID, true, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
