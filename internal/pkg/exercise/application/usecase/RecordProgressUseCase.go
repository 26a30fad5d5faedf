package usecase

import (
	"context"
	"time"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type RecordProgressInput struct {
	ExerciseID string
	UserID     string
	Step       int
	Response   string
}

// RecordProgressUseCase completes the current step of an exercise. Two
// partners racing on the same step: the loser gets ErrStepMismatch.
type RecordProgressUseCase struct {
	Repo     repository.ExerciseRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewRecordProgressUseCase(repo repository.ExerciseRepository, partners shared.PartnerResolver, notifier shared.Notifier) *RecordProgressUseCase {
	return &RecordProgressUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *RecordProgressUseCase) Execute(ctx context.Context, in RecordProgressInput) (*exercise.Exercise, error) {
	e, ps, err := participantExercise(ctx, uc.Repo, uc.Partners, in.ExerciseID, in.UserID)
	if err != nil {
		return nil, err
	}
	from := e.CurrentStep
	if err := e.Advance(in.Step, in.UserID, in.Response, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := uc.Repo.SaveProgress(ctx, *e, from); err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{
		Type: shared.EventExerciseProgress,
		Data: map[string]any{"exercise_id": e.ID, "current_step": e.CurrentStep, "status": e.Status},
	})
	return e, nil
}
