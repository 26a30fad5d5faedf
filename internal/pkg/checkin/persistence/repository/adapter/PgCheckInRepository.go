package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type PgCheckInRepository struct {
	pool *pgxpool.Pool
}

func NewPgCheckInRepository(pool *pgxpool.Pool) *PgCheckInRepository {
	return &PgCheckInRepository{pool: pool}
}

var _ repository.CheckInRepository = (*PgCheckInRepository)(nil)

func (r *PgCheckInRepository) Upsert(ctx context.Context, resp checkin.Response) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO checkin_responses (user_id, week_of, prompt_id, answer, rating, is_shared, created_at)
		VALUES ($1::uuid, $2::date, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT checkin_responses_user_week_prompt_key
		DO UPDATE SET answer = EXCLUDED.answer, rating = EXCLUDED.rating, is_shared = EXCLUDED.is_shared
		RETURNING id::text
	`, resp.UserID, resp.WeekOf.Time, resp.PromptID, resp.Answer, resp.Rating, resp.IsShared, resp.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgCheckInRepository) ListByUserWeek(ctx context.Context, userID string, week shared.Date, sharedOnly bool) ([]checkin.Response, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, week_of, prompt_id, answer, rating, is_shared, created_at
		FROM checkin_responses
		WHERE user_id = $1::uuid AND week_of = $2::date AND (NOT $3 OR is_shared)
		ORDER BY created_at
	`, userID, week.Time, sharedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []checkin.Response{}
	for rows.Next() {
		var c checkin.Response
		if err := rows.Scan(&c.ID, &c.UserID, &c.WeekOf.Time, &c.PromptID, &c.Answer, &c.Rating, &c.IsShared, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
