package conflict

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusResolved  Status = "resolved"
	StatusAbandoned Status = "abandoned"
)

var (
	ErrThreadNotFound    = shared.NotFound("conflict: thread not found")
	ErrThreadClosed      = shared.Conflict("conflict: thread is no longer active")
	ErrInvalidTransition = shared.Conflict("conflict: only active threads can be resolved or abandoned")
)

const (
	maxTopic       = 200
	maxDescription = 2000
	maxContent     = 5000
)

// ParseStatus accepts one of the three thread statuses.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusResolved, StatusAbandoned:
		return st, nil
	default:
		return "", shared.Invalidf("status must be one of active, resolved, abandoned")
	}
}

// Thread is a structured discussion of one disagreement between partners.
type Thread struct {
	ID                string     `json:"id"`
	PartnershipID     string     `json:"partnership_id"`
	CreatedBy         string     `json:"created_by"`
	Topic             string     `json:"topic"`
	Description       *string    `json:"description"`
	Status            Status     `json:"status"`
	ResolutionSummary *string    `json:"resolution_summary"`
	CreatedAt         time.Time  `json:"created_at"`
	ResolvedAt        *time.Time `json:"resolved_at"`
}

func NewThread(partnershipID, createdBy, topic string, description *string) (*Thread, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" || utf8.RuneCountInString(topic) > maxTopic {
		return nil, shared.Invalidf("topic must be between 1 and %d characters", maxTopic)
	}
	description = trimmed(description)
	if description != nil && utf8.RuneCountInString(*description) > maxDescription {
		return nil, shared.Invalidf("description must be at most %d characters", maxDescription)
	}
	return &Thread{
		PartnershipID: partnershipID,
		CreatedBy:     createdBy,
		Topic:         topic,
		Description:   description,
		Status:        StatusActive,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Transition checks that t may move to the terminal status to.
func (t *Thread) Transition(to Status) error {
	if t.Status != StatusActive || (to != StatusResolved && to != StatusAbandoned) {
		return ErrInvalidTransition
	}
	return nil
}

// Message is one contribution to a thread.
type Message struct {
	ID                 string    `json:"id"`
	ThreadID           string    `json:"thread_id"`
	UserID             string    `json:"user_id"`
	Content            string    `json:"content"`
	TransformedContent *string   `json:"transformed_content"`
	CreatedAt          time.Time `json:"created_at"`
}

// CheckContent rejects empty or oversized messages.
func CheckContent(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxContent {
		return "", shared.Invalidf("content must be between 1 and %d characters", maxContent)
	}
	return s, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
