package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
)

type PgJournalRepository struct {
	pool *pgxpool.Pool
}

func NewPgJournalRepository(pool *pgxpool.Pool) *PgJournalRepository {
	return &PgJournalRepository{pool: pool}
}

var _ repository.JournalRepository = (*PgJournalRepository)(nil)

func (r *PgJournalRepository) Create(ctx context.Context, e journal.Entry) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO journal_entries (user_id, title, content, mood, is_shared, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, e.UserID, e.Title, e.Content, e.Mood, e.IsShared, e.CreatedAt, e.UpdatedAt).Scan(&id)
	return id, err
}

func (r *PgJournalRepository) Update(ctx context.Context, e journal.Entry) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE journal_entries
		SET title = $3, content = $4, mood = $5, is_shared = $6, updated_at = $7
		WHERE id = $1::uuid AND user_id = $2::uuid
	`, e.ID, e.UserID, e.Title, e.Content, e.Mood, e.IsShared, e.UpdatedAt)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return journal.ErrEntryNotFound
	}
	return nil
}

func (r *PgJournalRepository) Delete(ctx context.Context, id string, userID string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1::uuid AND user_id = $2::uuid`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return journal.ErrEntryNotFound
	}
	return nil
}

func (r *PgJournalRepository) FindByID(ctx context.Context, id string) (*journal.Entry, error) {
	var e journal.Entry
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, user_id::text, title, content, mood, is_shared, created_at, updated_at
		FROM journal_entries WHERE id = $1::uuid
	`, id).Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.IsShared, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, journal.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgJournalRepository) ListByUser(ctx context.Context, userID string, sharedOnly bool, limit int, offset int) ([]journal.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, title, content, mood, is_shared, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1::uuid AND (NOT $2 OR is_shared)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, userID, sharedOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		var e journal.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.IsShared, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return entries, nil
}
