package message

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

var (
	ErrMessageNotFound = shared.NotFound("message: not found")
	ErrEmptyMessage    = shared.Invalid("message: message text is required")
	ErrOwnMessage      = shared.Forbidden("message: you cannot respond to your own message")
)

// MaxLength bounds statements, rewrites and responses.
const MaxLength = 5000

// Message is a statement together with its empathetic rewrite.
type Message struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	OriginalMessage       string    `json:"original_message"`
	TransformedMessage    string    `json:"transformed_message"`
	Context               *string   `json:"context"`
	CommunicationElements []string  `json:"communication_elements"`
	DeliveryTips          []string  `json:"delivery_tips"`
	IsShared              bool      `json:"is_shared"`
	CreatedAt             time.Time `json:"created_at"`
}

// NewMessage validates m and fills defaults.
func NewMessage(m Message) (*Message, error) {
	m.OriginalMessage = strings.TrimSpace(m.OriginalMessage)
	m.TransformedMessage = strings.TrimSpace(m.TransformedMessage)
	if m.UserID == "" {
		return nil, shared.Invalid("message: user id is required")
	}
	if err := CheckText("original_message", m.OriginalMessage); err != nil {
		return nil, err
	}
	if err := CheckText("transformed_message", m.TransformedMessage); err != nil {
		return nil, err
	}
	if m.Context != nil {
		c := strings.TrimSpace(*m.Context)
		if c == "" {
			m.Context = nil
		} else {
			m.Context = &c
		}
	}
	if m.CommunicationElements == nil {
		m.CommunicationElements = []string{}
	}
	if m.DeliveryTips == nil {
		m.DeliveryTips = []string{}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return &m, nil
}

// CheckText rejects empty or oversized text fields.
func CheckText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return shared.Invalidf("%s is required", field)
	}
	if utf8.RuneCountInString(s) > MaxLength {
		return shared.Invalidf("%s must be at most %d characters", field, MaxLength)
	}
	return nil
}

// VisibleTo reports whether userID may read m given the author's partner.
func (m *Message) VisibleTo(userID, authorPartnerID string) bool {
	if m.UserID == userID {
		return true
	}
	return m.IsShared && authorPartnerID != "" && authorPartnerID == userID
}

// Response is the partner's reply to a shared message.
type Response struct {
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
