package user

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

var (
	ErrNotFound           = shared.NotFound("user: not found")
	ErrUsernameTaken      = shared.Conflict("user: username already taken")
	ErrEmailTaken         = shared.Conflict("user: email already registered")
	ErrInvalidCredentials = shared.Unauthorized("user: invalid username or password")
	ErrAvatarNotFound     = shared.NotFound("user: no avatar generated yet")
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores bytes past 72
)

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser validates and normalises registration fields. The password hash is
// set by the caller.
func NewUser(username, email, displayName string) (*User, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 32 {
		return nil, shared.Invalid("username must be between 3 and 32 characters")
	}
	if strings.ContainsAny(username, " @\t\n") {
		return nil, shared.Invalid("username must not contain spaces or @")
	}
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}
	if utf8.RuneCountInString(displayName) > 64 {
		return nil, shared.Invalid("display name must be at most 64 characters")
	}
	now := time.Now().UTC()
	return &User{
		Username:    username,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NormalizeEmail lower-cases and validates an e-mail address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", shared.Invalid("email address is not valid")
	}
	return email, nil
}

// ValidatePassword checks the length bounds.
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return shared.Invalidf("password must be at least %d characters", MinPasswordLength)
	}
	if len(pw) > MaxPasswordLength {
		return shared.Invalidf("password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}

// AvatarPath is the public URL of a user's generated avatar.
func AvatarPath(userID string) string {
	return "/api/users/" + userID + "/avatar"
}
