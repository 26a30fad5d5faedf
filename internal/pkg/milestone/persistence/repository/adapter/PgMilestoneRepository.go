package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
)

type PgMilestoneRepository struct {
	pool *pgxpool.Pool
}

func NewPgMilestoneRepository(pool *pgxpool.Pool) *PgMilestoneRepository {
	return &PgMilestoneRepository{pool: pool}
}

var _ repository.MilestoneRepository = (*PgMilestoneRepository)(nil)

func (r *PgMilestoneRepository) Create(ctx context.Context, m milestone.Milestone) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO milestones (partnership_id, created_by, title, description, kind, occurred_on, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6::date, $7)
		RETURNING id::text
	`, m.PartnershipID, m.CreatedBy, m.Title, m.Description, m.Kind, m.OccurredOn.Time, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgMilestoneRepository) ListByPartnership(ctx context.Context, partnershipID string) ([]milestone.Milestone, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, partnership_id::text, created_by::text, title, description, kind, occurred_on, created_at
		FROM milestones
		WHERE partnership_id = $1::uuid
		ORDER BY occurred_on DESC, created_at DESC
	`, partnershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []milestone.Milestone{}
	for rows.Next() {
		var m milestone.Milestone
		if err := rows.Scan(&m.ID, &m.PartnershipID, &m.CreatedBy, &m.Title, &m.Description, &m.Kind, &m.OccurredOn.Time, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PgMilestoneRepository) Delete(ctx context.Context, id, userID string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM milestones WHERE id = $1::uuid AND created_by = $2::uuid`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return milestone.ErrMilestoneNotFound
	}
	return nil
}
