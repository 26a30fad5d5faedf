// Package usertest provides an in-memory UserRepository for tests.
package usertest

import (
	"context"
	"strconv"
	"sync"
	"time"

	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type Repository struct {
	mu      sync.Mutex
	seq     int
	users   map[string]user.User
	avatars map[string]user.Avatar
}

func NewRepository() *Repository {
	return &Repository{users: make(map[string]user.User), avatars: make(map[string]user.Avatar)}
}

var _ repository.UserRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, u user.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return "", user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return "", user.ErrEmailTaken
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *Repository) FindByLogin(_ context.Context, login string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *Repository) UpdateProfile(_ context.Context, id string, displayName string, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	for otherID, other := range r.users {
		if otherID != id && other.Email == email {
			return nil, user.ErrEmailTaken
		}
	}
	u.DisplayName, u.Email, u.UpdatedAt = displayName, email, time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

func (r *Repository) SaveAvatar(_ context.Context, a user.Avatar, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[a.UserID]
	if !ok {
		return user.ErrNotFound
	}
	u.AvatarURL = &avatarURL
	r.users[a.UserID] = u
	r.avatars[a.UserID] = a
	return nil
}

func (r *Repository) GetAvatar(_ context.Context, userID string) (*user.Avatar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.avatars[userID]
	if !ok {
		return nil, user.ErrAvatarNotFound
	}
	return &a, nil
}
