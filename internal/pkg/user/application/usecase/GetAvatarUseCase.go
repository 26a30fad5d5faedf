package usecase

import (
	"context"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type GetAvatarUseCase struct {
	Repo repository.UserRepository
}

func NewGetAvatarUseCase(repo repository.UserRepository) *GetAvatarUseCase {
	return &GetAvatarUseCase{Repo: repo}
}

func (uc *GetAvatarUseCase) Execute(ctx context.Context, userID string) (*user.Avatar, error) {
	a, err := uc.Repo.GetAvatar(ctx, userID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return a, nil
}
