package usecase

import (
	"context"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type GetUserUseCase struct {
	Repo repository.UserRepository
}

func NewGetUserUseCase(repo repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{Repo: repo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID string) (*user.User, error) {
	u, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return u, nil
}
