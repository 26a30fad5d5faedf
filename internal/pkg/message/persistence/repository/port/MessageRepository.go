package repository

import (
	"context"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m message.Message) (string, error)
	FindByID(ctx context.Context, id string) (*message.Message, error)
	ListByUser(ctx context.Context, userID string, sharedOnly bool, limit int, offset int) ([]message.Message, error)
	CreateResponse(ctx context.Context, r message.Response) (string, error)
	ListResponses(ctx context.Context, messageID string) ([]message.Response, error)
}
