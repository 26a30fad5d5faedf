package directmessage

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

const maxContent = 5000

// DirectMessage is a plain chat message between partners.
type DirectMessage struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
}

func NewDirectMessage(senderID, recipientID, content string) (*DirectMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxContent {
		return nil, shared.Invalidf("content must be between 1 and %d characters", maxContent)
	}
	return &DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
