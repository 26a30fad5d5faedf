package repository

import (
	"context"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
)

type AppreciationRepository interface {
	Create(ctx context.Context, a appreciation.Appreciation) (string, error)
	ListReceived(ctx context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error)
	ListSent(ctx context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error)
}
