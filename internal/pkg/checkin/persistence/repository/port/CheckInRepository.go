package repository

import (
	"context"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CheckInRepository interface {
	// Upsert stores r, replacing the user's earlier answer to the same
	// prompt in the same week, and returns the row id.
	Upsert(ctx context.Context, r checkin.Response) (string, error)
	ListByUserWeek(ctx context.Context, userID string, week shared.Date, sharedOnly bool) ([]checkin.Response, error)
}
