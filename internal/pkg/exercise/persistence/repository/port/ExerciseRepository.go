package repository

import (
	"context"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
)

type ExerciseRepository interface {
	Create(ctx context.Context, e exercise.Exercise) (string, error)
	FindByID(ctx context.Context, id string) (*exercise.Exercise, error)
	ListByPartnership(ctx context.Context, partnershipID string) ([]exercise.Exercise, error)
	// SaveProgress writes e only if the stored current step still equals
	// fromStep; otherwise it reports exercise.ErrStepMismatch.
	SaveProgress(ctx context.Context, e exercise.Exercise, fromStep int) error
}
