package adapter

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	directmessage "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
)

type PgDirectMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgDirectMessageRepository(pool *pgxpool.Pool) *PgDirectMessageRepository {
	return &PgDirectMessageRepository{pool: pool}
}

var _ repository.DirectMessageRepository = (*PgDirectMessageRepository)(nil)

func (r *PgDirectMessageRepository) Create(ctx context.Context, m directmessage.DirectMessage) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO direct_messages (sender_id, recipient_id, content, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, m.SenderID, m.RecipientID, m.Content, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgDirectMessageRepository) Conversation(ctx context.Context, a, b string, limit int, offset int) ([]directmessage.DirectMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, recipient_id::text, content, created_at, read_at
		FROM direct_messages
		WHERE (sender_id = $1::uuid AND recipient_id = $2::uuid)
		   OR (sender_id = $2::uuid AND recipient_id = $1::uuid)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, a, b, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []directmessage.DirectMessage{}
	for rows.Next() {
		var m directmessage.DirectMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt, &m.ReadAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PgDirectMessageRepository) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM direct_messages WHERE recipient_id = $1::uuid AND read_at IS NULL
	`, recipientID).Scan(&n)
	return n, err
}

func (r *PgDirectMessageRepository) MarkRead(ctx context.Context, senderID, recipientID string, at time.Time) (int, error) {
	ct, err := r.pool.Exec(ctx, `
		UPDATE direct_messages SET read_at = $3
		WHERE sender_id = $1::uuid AND recipient_id = $2::uuid AND read_at IS NULL
	`, senderID, recipientID, at)
	if err != nil {
		return 0, err
	}
	return int(ct.RowsAffected()), nil
}
