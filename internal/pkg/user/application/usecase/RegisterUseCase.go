package usecase

import (
	"context"
	"fmt"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// RegisterUseCase creates an account with a hashed password.
type RegisterUseCase struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
}

func NewRegisterUseCase(repo repository.UserRepository, hasher PasswordHasher) *RegisterUseCase {
	return &RegisterUseCase{Repo: repo, Hasher: hasher}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (*user.User, error) {
	u, err := user.NewUser(in.Username, in.Email, in.DisplayName)
	if err != nil {
		return nil, err
	}
	if err := user.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := uc.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("user: hash password: %w", err)
	}
	u.PasswordHash = hash

	id, err := uc.Repo.Create(ctx, *u)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	u.ID = id
	return u, nil
}
