// Package port declares the AI capabilities the application depends on.
package port

import "context"

// TransformRequest is a raw statement and optional situation context.
type TransformRequest struct {
	Message string
	Context string
}

// Transformation is the empathetic rewrite of a statement.
type Transformation struct {
	TransformedMessage    string   `json:"transformed_message"`
	CommunicationElements []string `json:"communication_elements"`
	DeliveryTips          []string `json:"delivery_tips"`
}

// Transformer rewrites raw emotional statements.
type Transformer interface {
	Transform(ctx context.Context, req TransformRequest) (Transformation, error)
}

// ConflictLine is one message of a conflict thread, attributed to a speaker.
type ConflictLine struct {
	Speaker string
	Content string
}

// Summarizer produces a short resolution summary of a conflict thread.
type Summarizer interface {
	SummarizeConflict(ctx context.Context, topic string, lines []ConflictLine) (string, error)
}

// Image is generated image bytes and their MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageGenerator renders an avatar from a text prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (Image, error)
}
