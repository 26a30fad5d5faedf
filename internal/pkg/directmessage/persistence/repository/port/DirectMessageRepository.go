package repository

import (
	"context"
	"time"

	directmessage "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/domain"
)

type DirectMessageRepository interface {
	Create(ctx context.Context, m directmessage.DirectMessage) (string, error)
	// Conversation returns a page of the messages exchanged by a and b, newest
	// page first.
	Conversation(ctx context.Context, a, b string, limit int, offset int) ([]directmessage.DirectMessage, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, senderID, recipientID string, at time.Time) (int, error)
}
