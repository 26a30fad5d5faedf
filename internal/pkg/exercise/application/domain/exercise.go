package exercise

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var (
	ErrExerciseNotFound  = shared.NotFound("exercise: not found")
	ErrUnknownTemplate   = shared.Invalid("exercise: unknown template")
	ErrExerciseCompleted = shared.Conflict("exercise: already completed")
	ErrStepMismatch      = shared.Conflict("exercise: step does not match the current step")
)

// StepResponse is what a participant wrote when completing a step.
type StepResponse struct {
	Step      int       `json:"step"`
	UserID    string    `json:"user_id"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// Exercise is a guided exercise a couple works through step by step.
type Exercise struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	PartnershipID string         `json:"partnership_id"`
	Template      string         `json:"template"`
	Title         string         `json:"title"`
	Steps         []Step         `json:"steps"`
	CurrentStep   int            `json:"current_step"`
	Responses     []StepResponse `json:"responses"`
	Status        Status         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   *time.Time     `json:"completed_at"`
}

// Start instantiates template for a partnership.
func Start(templateID, userID, partnershipID string) (*Exercise, error) {
	t, ok := FindTemplate(templateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}
	steps := make([]Step, len(t.Steps))
	copy(steps, t.Steps)
	return &Exercise{
		UserID:        userID,
		PartnershipID: partnershipID,
		Template:      t.ID,
		Title:         t.Title,
		Steps:         steps,
		Responses:     []StepResponse{},
		Status:        StatusNotStarted,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Advance records a response to step and moves to the next one. Completing
// the last step completes the exercise.
func (e *Exercise) Advance(step int, userID, response string, now time.Time) error {
	if e.Status == StatusCompleted {
		return ErrExerciseCompleted
	}
	if step != e.CurrentStep {
		return ErrStepMismatch
	}
	response = strings.TrimSpace(response)
	if utf8.RuneCountInString(response) > 5000 {
		return shared.Invalid("response must be at most 5000 characters")
	}
	e.Responses = append(e.Responses, StepResponse{Step: step, UserID: userID, Response: response, CreatedAt: now})
	e.CurrentStep++
	if e.CurrentStep >= len(e.Steps) {
		e.Status = StatusCompleted
		e.CompletedAt = &now
	} else {
		e.Status = StatusInProgress
	}
	return nil
}
