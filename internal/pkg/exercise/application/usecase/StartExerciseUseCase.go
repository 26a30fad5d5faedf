package usecase

import (
	"context"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type StartExerciseUseCase struct {
	Repo     repository.ExerciseRepository
	Partners shared.PartnerResolver
}

func NewStartExerciseUseCase(repo repository.ExerciseRepository, partners shared.PartnerResolver) *StartExerciseUseCase {
	return &StartExerciseUseCase{Repo: repo, Partners: partners}
}

func (uc *StartExerciseUseCase) Execute(ctx context.Context, userID, templateID string) (*exercise.Exercise, error) {
	if _, ok := exercise.FindTemplate(templateID); !ok {
		return nil, exercise.ErrUnknownTemplate
	}
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, userID)
	if err != nil {
		return nil, err
	}
	e, err := exercise.Start(templateID, userID, ps.ID)
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *e)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	e.ID = id
	return e, nil
}
