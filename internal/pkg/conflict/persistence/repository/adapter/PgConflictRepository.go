package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
)

type PgConflictRepository struct {
	pool *pgxpool.Pool
}

func NewPgConflictRepository(pool *pgxpool.Pool) *PgConflictRepository {
	return &PgConflictRepository{pool: pool}
}

var _ repository.ConflictRepository = (*PgConflictRepository)(nil)

const threadColumns = `id::text, partnership_id::text, created_by::text, topic, description, status,
	resolution_summary, created_at, resolved_at`

func scanThread(row pgx.Row) (*conflict.Thread, error) {
	var t conflict.Thread
	err := row.Scan(&t.ID, &t.PartnershipID, &t.CreatedBy, &t.Topic, &t.Description, &t.Status,
		&t.ResolutionSummary, &t.CreatedAt, &t.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgConflictRepository) CreateThread(ctx context.Context, t conflict.Thread) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO conflict_threads (partnership_id, created_by, topic, description, status, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
		RETURNING id::text
	`, t.PartnershipID, t.CreatedBy, t.Topic, t.Description, string(t.Status), t.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgConflictRepository) FindThread(ctx context.Context, id string) (*conflict.Thread, error) {
	t, err := scanThread(r.pool.QueryRow(ctx, `SELECT `+threadColumns+` FROM conflict_threads WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, conflict.ErrThreadNotFound
	}
	return t, err
}

func (r *PgConflictRepository) ListThreads(ctx context.Context, partnershipID string, status conflict.Status) ([]conflict.Thread, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+threadColumns+`
		FROM conflict_threads
		WHERE partnership_id = $1::uuid AND ($2::text = '' OR status = $2::text)
		ORDER BY created_at DESC
	`, partnershipID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []conflict.Thread{}
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *PgConflictRepository) AddMessage(ctx context.Context, m conflict.Message) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO conflict_messages (thread_id, user_id, content, transformed_content, created_at)
		SELECT t.id, $2::uuid, $3::text, $4::text, $5::timestamptz
		FROM conflict_threads t
		WHERE t.id = $1::uuid AND t.status = 'active'
		RETURNING id::text
	`, m.ThreadID, m.UserID, m.Content, m.TransformedContent, m.CreatedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", conflict.ErrThreadClosed
	}
	return id, err
}

func (r *PgConflictRepository) ListMessages(ctx context.Context, threadID string) ([]conflict.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, thread_id::text, user_id::text, content, transformed_content, created_at
		FROM conflict_messages
		WHERE thread_id = $1::uuid
		ORDER BY created_at
	`, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []conflict.Message{}
	for rows.Next() {
		var m conflict.Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.UserID, &m.Content, &m.TransformedContent, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PgConflictRepository) UpdateStatus(ctx context.Context, id string, to conflict.Status, summary *string, at time.Time) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE conflict_threads
		SET status = $2, resolution_summary = COALESCE($3, resolution_summary), resolved_at = $4
		WHERE id = $1::uuid AND status = 'active'
	`, id, string(to), summary, at)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return conflict.ErrInvalidTransition
	}
	return nil
}
