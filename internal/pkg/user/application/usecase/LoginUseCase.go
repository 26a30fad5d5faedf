package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type LoginInput struct {
	Login    string // username or e-mail
	Password string
}

type LoginUseCase struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
}

func NewLoginUseCase(repo repository.UserRepository, hasher PasswordHasher) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Hasher: hasher}
}

// Execute verifies credentials. Unknown users and wrong passwords both yield
// user.ErrInvalidCredentials.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*user.User, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return nil, shared.Invalid("username and password are required")
	}
	u, err := uc.Repo.FindByLogin(ctx, login)
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	ok, err := uc.Hasher.Compare(u.PasswordHash, in.Password)
	if err != nil || !ok {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}
