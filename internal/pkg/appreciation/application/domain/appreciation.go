package appreciation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// Appreciation is a short note of gratitude sent to the partner.
type Appreciation struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAppreciation(from, to, content string) (*Appreciation, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > 1000 {
		return nil, shared.Invalid("content must be between 1 and 1000 characters")
	}
	return &Appreciation{FromUserID: from, ToUserID: to, Content: content, CreatedAt: time.Now().UTC()}, nil
}
