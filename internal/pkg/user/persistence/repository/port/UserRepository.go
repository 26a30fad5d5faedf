package repository

import (
	"context"

	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
)

// UserRepository persists accounts and avatars. Create reports duplicate
// usernames and e-mails as user.ErrUsernameTaken / user.ErrEmailTaken;
// lookups report user.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, u user.User) (string, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByLogin(ctx context.Context, login string) (*user.User, error)
	UpdateProfile(ctx context.Context, id string, displayName string, email string) (*user.User, error)
	SaveAvatar(ctx context.Context, a user.Avatar, avatarURL string) error
	GetAvatar(ctx context.Context, userID string) (*user.Avatar, error)
}
