package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

const (
	transformInstruction = `You help partners in a relationship express difficult feelings with empathy.
Rewrite the user's message so it uses "I" statements, names the underlying feeling and need,
avoids blame and absolutes, and invites connection. Keep the author's meaning.
Respond with JSON only, shaped as:
{"transformed_message": string, "communication_elements": [string], "delivery_tips": [string]}
communication_elements lists the techniques used; delivery_tips gives 2-4 short tips for saying it aloud.`

	summaryInstruction = `You summarise how a couple resolved a disagreement.
Write two or three warm, neutral sentences describing what each partner needed and what they agreed.
Respond with JSON only: {"summary": string}`

	avatarStyle = "Friendly illustrated profile avatar, soft colours, centred head and shoulders, plain background. "
)

// GenAI implements the AI ports on Google's Gemini API.
type GenAI struct {
	client     *genai.Client
	textModel  string
	imageModel string
	logger     *zap.Logger
}

// NewGenAI creates a Gemini API client.
func NewGenAI(ctx context.Context, apiKey, textModel, imageModel string, logger *zap.Logger) (*GenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	if imageModel == "" {
		imageModel = "imagen-3.0-generate-002"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAI{client: client, textModel: textModel, imageModel: imageModel, logger: logger}, nil
}

var (
	_ port.Transformer    = (*GenAI)(nil)
	_ port.Summarizer     = (*GenAI)(nil)
	_ port.ImageGenerator = (*GenAI)(nil)
)

// TextModel names the model used for text generation.
func (g *GenAI) TextModel() string { return g.textModel }

func (g *GenAI) Transform(ctx context.Context, req port.TransformRequest) (out port.Transformation, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAI("transform", start, err) }()

	prompt := "Message: " + req.Message
	if c := strings.TrimSpace(req.Context); c != "" {
		prompt += "\nSituation: " + c
	}
	text, err := g.generateJSON(ctx, transformInstruction, prompt, 0.7)
	if err != nil {
		return port.Transformation{}, err
	}
	out, err = parseTransformation(text)
	if err != nil {
		g.logger.Warn("ai: unreadable transform output", zap.Int("length", len(text)))
		return port.Transformation{}, shared.Upstream("AI service returned an unreadable response, please try again")
	}
	return out, nil
}

func (g *GenAI) SummarizeConflict(ctx context.Context, topic string, lines []port.ConflictLine) (summary string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAI("summarize", start, err) }()

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	for _, l := range lines {
		fmt.Fprintf(&b, "%s: %s\n", l.Speaker, l.Content)
	}
	text, err := g.generateJSON(ctx, summaryInstruction, b.String(), 0.4)
	if err != nil {
		return "", err
	}
	return parseSummary(text), nil
}

func (g *GenAI) GenerateImage(ctx context.Context, prompt string) (img port.Image, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAI("avatar", start, err) }()

	resp, err := g.client.Models.GenerateImages(ctx, g.imageModel, avatarStyle+prompt, &genai.GenerateImagesConfig{
		OutputMIMEType: "image/png",
	})
	if err != nil {
		g.logger.Warn("ai: image generation failed", zap.Error(err))
		return port.Image{}, shared.Upstream("avatar generation failed")
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return port.Image{}, shared.Upstream("avatar generation returned no image")
	}
	im := resp.GeneratedImages[0].Image
	mime := im.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return port.Image{Data: im.ImageBytes, MIMEType: mime}, nil
}

func (g *GenAI) generateJSON(ctx context.Context, instruction, prompt string, temperature float32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		g.logger.Warn("ai: generate content failed", zap.String("model", g.textModel), zap.Error(err))
		return "", shared.Upstream("AI service request failed, please try again")
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", shared.Upstream("AI service returned an empty response")
	}
	return text, nil
}
