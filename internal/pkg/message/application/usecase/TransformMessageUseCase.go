package usecase

import (
	"context"
	"strings"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
)

type TransformInput struct {
	Message string
	Context string
}

// TransformMessageUseCase rewrites a raw statement with the AI transformer.
// Nothing is persisted; the client saves the result with CreateMessage.
type TransformMessageUseCase struct {
	AI aiport.Transformer
}

func NewTransformMessageUseCase(ai aiport.Transformer) *TransformMessageUseCase {
	return &TransformMessageUseCase{AI: ai}
}

func (uc *TransformMessageUseCase) Execute(ctx context.Context, in TransformInput) (aiport.Transformation, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return aiport.Transformation{}, message.ErrEmptyMessage
	}
	if err := message.CheckText("message", msg); err != nil {
		return aiport.Transformation{}, err
	}
	out, err := uc.AI.Transform(ctx, aiport.TransformRequest{Message: msg, Context: strings.TrimSpace(in.Context)})
	if err != nil {
		return aiport.Transformation{}, err
	}
	if out.CommunicationElements == nil {
		out.CommunicationElements = []string{}
	}
	if out.DeliveryTips == nil {
		out.DeliveryTips = []string{}
	}
	return out, nil
}
