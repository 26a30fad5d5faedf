package journal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

var ErrEntryNotFound = shared.NotFound("journal: entry not found")

const (
	maxTitle   = 200
	maxContent = 20000
	maxMood    = 40
)

// Entry is a private journal note that its author may share with the partner.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      *string   `json:"mood"`
	IsShared  bool      `json:"is_shared"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry validates and normalises an entry.
func NewEntry(e Entry) (*Entry, error) {
	if e.UserID == "" {
		return nil, shared.Invalid("journal: user id is required")
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = e.CreatedAt
	return &e, nil
}

func (e *Entry) validate() error {
	e.Title = strings.TrimSpace(e.Title)
	e.Content = strings.TrimSpace(e.Content)
	if e.Title == "" || utf8.RuneCountInString(e.Title) > maxTitle {
		return shared.Invalidf("title must be between 1 and %d characters", maxTitle)
	}
	if e.Content == "" || utf8.RuneCountInString(e.Content) > maxContent {
		return shared.Invalidf("content must be between 1 and %d characters", maxContent)
	}
	if e.Mood != nil {
		m := strings.TrimSpace(*e.Mood)
		switch {
		case m == "":
			e.Mood = nil
		case utf8.RuneCountInString(m) > maxMood:
			return shared.Invalidf("mood must be at most %d characters", maxMood)
		default:
			e.Mood = &m
		}
	}
	return nil
}

// Patch holds optional edits; nil fields are left unchanged.
type Patch struct {
	Title    *string
	Content  *string
	Mood     *string
	IsShared *bool
}

// Apply returns e with the patch applied and validated.
func (e Entry) Apply(p Patch) (*Entry, error) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Mood != nil {
		e.Mood = p.Mood
	}
	if p.IsShared != nil {
		e.IsShared = *p.IsShared
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now().UTC()
	return &e, nil
}
