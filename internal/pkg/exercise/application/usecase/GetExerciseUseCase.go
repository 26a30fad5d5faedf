package usecase

import (
	"context"
	"errors"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type GetExerciseUseCase struct {
	Repo     repository.ExerciseRepository
	Partners shared.PartnerResolver
}

func NewGetExerciseUseCase(repo repository.ExerciseRepository, partners shared.PartnerResolver) *GetExerciseUseCase {
	return &GetExerciseUseCase{Repo: repo, Partners: partners}
}

func (uc *GetExerciseUseCase) Execute(ctx context.Context, id, userID string) (*exercise.Exercise, error) {
	e, _, err := participantExercise(ctx, uc.Repo, uc.Partners, id, userID)
	return e, err
}

// participantExercise loads an exercise of the caller's current partnership.
func participantExercise(ctx context.Context, repo repository.ExerciseRepository, partners shared.PartnerResolver, id, userID string) (*exercise.Exercise, shared.Partnership, error) {
	ps, err := partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return nil, ps, exercise.ErrExerciseNotFound
	}
	if err != nil {
		return nil, ps, shared.WrapPersistence(ErrPersistence, err)
	}
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, ps, shared.WrapPersistence(ErrPersistence, err)
	}
	if e.PartnershipID != ps.ID {
		return nil, ps, exercise.ErrExerciseNotFound
	}
	return e, ps, nil
}

type ListExercisesUseCase struct {
	Repo     repository.ExerciseRepository
	Partners shared.PartnerResolver
}

func NewListExercisesUseCase(repo repository.ExerciseRepository, partners shared.PartnerResolver) *ListExercisesUseCase {
	return &ListExercisesUseCase{Repo: repo, Partners: partners}
}

func (uc *ListExercisesUseCase) Execute(ctx context.Context, userID string) ([]exercise.Exercise, error) {
	ps, err := uc.Partners.PartnershipOf(ctx, userID)
	if errors.Is(err, shared.ErrNoPartner) {
		return []exercise.Exercise{}, nil
	}
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	out, err := uc.Repo.ListByPartnership(ctx, ps.ID)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
