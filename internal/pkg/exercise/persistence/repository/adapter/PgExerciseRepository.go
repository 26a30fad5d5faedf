package adapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
)

type PgExerciseRepository struct {
	pool *pgxpool.Pool
}

func NewPgExerciseRepository(pool *pgxpool.Pool) *PgExerciseRepository {
	return &PgExerciseRepository{pool: pool}
}

var _ repository.ExerciseRepository = (*PgExerciseRepository)(nil)

const exerciseColumns = `id::text, user_id::text, partnership_id::text, template, title, steps,
	current_step, responses, status, created_at, completed_at`

func scanExercise(row pgx.Row) (*exercise.Exercise, error) {
	var (
		e                exercise.Exercise
		steps, responses []byte
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.PartnershipID, &e.Template, &e.Title, &steps,
		&e.CurrentStep, &responses, &e.Status, &e.CreatedAt, &e.CompletedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(steps, &e.Steps); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(responses, &e.Responses); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgExerciseRepository) Create(ctx context.Context, e exercise.Exercise) (string, error) {
	steps, err := json.Marshal(e.Steps)
	if err != nil {
		return "", err
	}
	responses, err := json.Marshal(e.Responses)
	if err != nil {
		return "", err
	}
	var id string
	err = r.pool.QueryRow(ctx, `
		INSERT INTO exercises (user_id, partnership_id, template, title, steps, current_step, responses, status, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5::jsonb, $6, $7::jsonb, $8, $9)
		RETURNING id::text
	`, e.UserID, e.PartnershipID, e.Template, e.Title, string(steps), e.CurrentStep, string(responses), string(e.Status), e.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgExerciseRepository) FindByID(ctx context.Context, id string) (*exercise.Exercise, error) {
	e, err := scanExercise(r.pool.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, exercise.ErrExerciseNotFound
	}
	return e, err
}

func (r *PgExerciseRepository) ListByPartnership(ctx context.Context, partnershipID string) ([]exercise.Exercise, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises
		WHERE partnership_id = $1::uuid
		ORDER BY created_at DESC
	`, partnershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []exercise.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *PgExerciseRepository) SaveProgress(ctx context.Context, e exercise.Exercise, fromStep int) error {
	responses, err := json.Marshal(e.Responses)
	if err != nil {
		return err
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE exercises
		SET current_step = $2, responses = $3::jsonb, status = $4, completed_at = $5
		WHERE id = $1::uuid AND current_step = $6 AND status <> 'completed'
	`, e.ID, e.CurrentStep, string(responses), string(e.Status), e.CompletedAt, fromStep)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return exercise.ErrStepMismatch
	}
	return nil
}
