package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// GenerateAvatarTaskType is the queue task name for avatar generation.
const GenerateAvatarTaskType = "avatar:generate"

// GenerateAvatarPayload is the JSON payload transported via the queue.
type GenerateAvatarPayload struct {
	UserID string `json:"user_id"`
	Prompt string `json:"prompt"`
}

// RequestAvatarUseCase queues an avatar generation for the user.
type RequestAvatarUseCase struct {
	Q queueport.Client
}

func NewRequestAvatarUseCase(client queueport.Client) *RequestAvatarUseCase {
	return &RequestAvatarUseCase{Q: client}
}

func (uc *RequestAvatarUseCase) Execute(ctx context.Context, userID, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", shared.Invalid("prompt is required")
	}
	if len(prompt) > 500 {
		return "", shared.Invalid("prompt must be at most 500 characters")
	}
	b, err := json.Marshal(GenerateAvatarPayload{UserID: userID, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("user: encode avatar task: %w", err)
	}
	id, err := uc.Q.Enqueue(ctx, queueport.Task{Type: GenerateAvatarTaskType, Payload: b}, queueport.EnqueueOption{
		Queue:     "ai",
		MaxRetry:  2,
		Timeout:   90 * time.Second,
		UniqueTTL: time.Minute,
	})
	if err != nil {
		return "", shared.Unavailable("could not queue avatar generation, please try again")
	}
	return id, nil
}
