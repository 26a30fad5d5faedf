package adapter

import (
	"context"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ErrAIDisabled is returned by every operation when no API key is configured.
var ErrAIDisabled = shared.Unavailable("AI features are not configured on this server")

// Unavailable stands in for the provider when GEMINI_API_KEY is unset.
type Unavailable struct{}

var (
	_ port.Transformer    = Unavailable{}
	_ port.Summarizer     = Unavailable{}
	_ port.ImageGenerator = Unavailable{}
)

func (Unavailable) Transform(context.Context, port.TransformRequest) (port.Transformation, error) {
	return port.Transformation{}, ErrAIDisabled
}

func (Unavailable) SummarizeConflict(context.Context, string, []port.ConflictLine) (string, error) {
	return "", ErrAIDisabled
}

func (Unavailable) GenerateImage(context.Context, string) (port.Image, error) {
	return port.Image{}, ErrAIDisabled
}
