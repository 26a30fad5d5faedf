package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/exercisetest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestExerciseRunsToCompletion(t *testing.T) {
	ctx := context.Background()
	repo := exercisetest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}

	e, err := NewStartExerciseUseCase(repo, partners).Execute(ctx, "alice", "gratitude_exchange")
	require.NoError(t, err)
	assert.Equal(t, exercise.StatusNotStarted, e.Status)
	assert.Len(t, e.Steps, 3)

	progress := NewRecordProgressUseCase(repo, partners, rec)

	_, err = progress.Execute(ctx, RecordProgressInput{ExerciseID: e.ID, UserID: "alice", Step: 1})
	assert.ErrorIs(t, err, exercise.ErrStepMismatch)

	got, err := progress.Execute(ctx, RecordProgressInput{ExerciseID: e.ID, UserID: "alice", Step: 0, Response: "the flowers"})
	require.NoError(t, err)
	assert.Equal(t, exercise.StatusInProgress, got.Status)
	assert.Equal(t, 1, got.CurrentStep)

	_, err = progress.Execute(ctx, RecordProgressInput{ExerciseID: e.ID, UserID: "bob", Step: 1, Response: "shared"})
	require.NoError(t, err)
	got, err = progress.Execute(ctx, RecordProgressInput{ExerciseID: e.ID, UserID: "alice", Step: 2, Response: "warm"})
	require.NoError(t, err)
	assert.Equal(t, exercise.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Len(t, got.Responses, 3)

	_, err = progress.Execute(ctx, RecordProgressInput{ExerciseID: e.ID, UserID: "bob", Step: 3})
	assert.ErrorIs(t, err, exercise.ErrExerciseCompleted)
	assert.ErrorIs(t, err, shared.ErrConflict)

	assert.Equal(t, []string{shared.EventExerciseProgress, shared.EventExerciseProgress}, rec.Types("bob"))
	assert.Equal(t, []string{shared.EventExerciseProgress}, rec.Types("alice"))
}

func TestExerciseAccess(t *testing.T) {
	ctx := context.Background()
	repo := exercisetest.NewRepository()
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	partners.Link("ps-2", "carol", "dave")

	_, err := NewStartExerciseUseCase(repo, partners).Execute(ctx, "alice", "yoga")
	assert.ErrorIs(t, err, exercise.ErrUnknownTemplate)
	_, err = NewStartExerciseUseCase(repo, partners).Execute(ctx, "erin", "active_listening")
	assert.ErrorIs(t, err, shared.ErrNoPartner)

	e, err := NewStartExerciseUseCase(repo, partners).Execute(ctx, "alice", "active_listening")
	require.NoError(t, err)

	get := NewGetExerciseUseCase(repo, partners)
	_, err = get.Execute(ctx, e.ID, "bob")
	require.NoError(t, err)
	_, err = get.Execute(ctx, e.ID, "carol")
	assert.ErrorIs(t, err, exercise.ErrExerciseNotFound)

	list, err := NewListExercisesUseCase(repo, partners).Execute(ctx, "dave")
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = NewListExercisesUseCase(repo, partners).Execute(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
