package usecase

import (
	"context"

	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type UnreadCountUseCase struct {
	Repo repository.DirectMessageRepository
}

func NewUnreadCountUseCase(repo repository.DirectMessageRepository) *UnreadCountUseCase {
	return &UnreadCountUseCase{Repo: repo}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, userID string) (int, error) {
	n, err := uc.Repo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, shared.WrapPersistence(ErrPersistence, err)
	}
	return n, nil
}
