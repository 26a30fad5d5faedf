package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/port"
)

type PgAppreciationRepository struct {
	pool *pgxpool.Pool
}

func NewPgAppreciationRepository(pool *pgxpool.Pool) *PgAppreciationRepository {
	return &PgAppreciationRepository{pool: pool}
}

var _ repository.AppreciationRepository = (*PgAppreciationRepository)(nil)

func (r *PgAppreciationRepository) Create(ctx context.Context, a appreciation.Appreciation) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appreciations (from_user_id, to_user_id, content, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, a.FromUserID, a.ToUserID, a.Content, a.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgAppreciationRepository) ListReceived(ctx context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error) {
	return r.list(ctx, `to_user_id`, userID, limit, offset)
}

func (r *PgAppreciationRepository) ListSent(ctx context.Context, userID string, limit int, offset int) ([]appreciation.Appreciation, error) {
	return r.list(ctx, `from_user_id`, userID, limit, offset)
}

// list filters on column, which is always one of the two constants above.
func (r *PgAppreciationRepository) list(ctx context.Context, column, userID string, limit, offset int) ([]appreciation.Appreciation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, from_user_id::text, to_user_id::text, content, created_at
		FROM appreciations
		WHERE `+column+` = $1::uuid
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []appreciation.Appreciation{}
	for rows.Next() {
		var a appreciation.Appreciation
		if err := rows.Scan(&a.ID, &a.FromUserID, &a.ToUserID, &a.Content, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
