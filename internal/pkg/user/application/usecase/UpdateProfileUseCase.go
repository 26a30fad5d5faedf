package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

// UpdateProfileInput fields are optional; nil keeps the current value.
type UpdateProfileInput struct {
	UserID      string
	DisplayName *string
	Email       *string
}

type UpdateProfileUseCase struct {
	Repo repository.UserRepository
}

func NewUpdateProfileUseCase(repo repository.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Repo: repo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, in UpdateProfileInput) (*user.User, error) {
	current, err := uc.Repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	displayName, email := current.DisplayName, current.Email
	if in.DisplayName != nil {
		displayName = strings.TrimSpace(*in.DisplayName)
		if displayName == "" || utf8.RuneCountInString(displayName) > 64 {
			return nil, shared.Invalid("display name must be between 1 and 64 characters")
		}
	}
	if in.Email != nil {
		if email, err = user.NormalizeEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	u, err := uc.Repo.UpdateProfile(ctx, in.UserID, displayName, email)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return u, nil
}
