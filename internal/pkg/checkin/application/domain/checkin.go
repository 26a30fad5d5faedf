package checkin

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

var ErrUnknownPrompt = shared.Invalid("checkin: unknown prompt")

// Prompt is one question of the weekly check-in.
type Prompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Prompts is the weekly catalogue, asked in this order every week.
var Prompts = []Prompt{
	{ID: "connection", Text: "How connected did you feel to your partner this week?"},
	{ID: "communication", Text: "How well did the two of you communicate this week?"},
	{ID: "appreciation", Text: "What is one thing your partner did this week that you appreciated?"},
	{ID: "stress", Text: "What weighed on you most this week, and how could your partner support you?"},
	{ID: "next_week", Text: "What would you like to do together next week?"},
}

// FindPrompt looks up a prompt by id.
func FindPrompt(id string) (Prompt, bool) {
	for _, p := range Prompts {
		if p.ID == id {
			return p, true
		}
	}
	return Prompt{}, false
}

// Response is a user's answer to one prompt for one week.
type Response struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	WeekOf    shared.Date `json:"week_of"`
	PromptID  string      `json:"prompt_id"`
	Answer    string      `json:"answer"`
	Rating    int         `json:"rating"`
	IsShared  bool        `json:"is_shared"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewResponse(r Response) (*Response, error) {
	if _, ok := FindPrompt(r.PromptID); !ok {
		return nil, ErrUnknownPrompt
	}
	r.Answer = strings.TrimSpace(r.Answer)
	if r.Answer == "" || utf8.RuneCountInString(r.Answer) > 2000 {
		return nil, shared.Invalid("answer must be between 1 and 2000 characters")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, shared.Invalid("rating must be between 1 and 5")
	}
	now := time.Now().UTC()
	if r.WeekOf.IsZero() {
		r.WeekOf = shared.WeekOf(now)
	}
	r.CreatedAt = now
	return &r, nil
}
