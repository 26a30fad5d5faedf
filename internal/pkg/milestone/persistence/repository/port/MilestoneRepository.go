package repository

import (
	"context"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
)

type MilestoneRepository interface {
	Create(ctx context.Context, m milestone.Milestone) (string, error)
	ListByPartnership(ctx context.Context, partnershipID string) ([]milestone.Milestone, error)
	// Delete removes a milestone created by userID; anything else reports
	// milestone.ErrMilestoneNotFound.
	Delete(ctx context.Context, id, userID string) error
}
