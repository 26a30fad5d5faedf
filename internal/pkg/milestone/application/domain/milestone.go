package milestone

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

var ErrMilestoneNotFound = shared.NotFound("milestone: not found")

// Kinds lists the accepted milestone categories.
var Kinds = []string{"anniversary", "first", "trip", "achievement", "breakthrough", "other"}

// Milestone is a dated moment in the couple's shared timeline.
type Milestone struct {
	ID            string      `json:"id"`
	PartnershipID string      `json:"partnership_id"`
	CreatedBy     string      `json:"created_by"`
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	Kind          string      `json:"kind"`
	OccurredOn    shared.Date `json:"occurred_on"`
	CreatedAt     time.Time   `json:"created_at"`
}

func NewMilestone(m Milestone) (*Milestone, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" || utf8.RuneCountInString(m.Title) > 200 {
		return nil, shared.Invalid("title must be between 1 and 200 characters")
	}
	m.Kind = strings.ToLower(strings.TrimSpace(m.Kind))
	if m.Kind == "" {
		m.Kind = "other"
	}
	if !validKind(m.Kind) {
		return nil, shared.Invalidf("kind must be one of %s", strings.Join(Kinds, ", "))
	}
	if m.OccurredOn.IsZero() {
		return nil, shared.Invalid("occurred_on is required")
	}
	if m.Description != nil {
		d := strings.TrimSpace(*m.Description)
		m.Description = &d
		if d == "" {
			m.Description = nil
		}
	}
	m.CreatedAt = time.Now().UTC()
	return &m, nil
}

func validKind(k string) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}
