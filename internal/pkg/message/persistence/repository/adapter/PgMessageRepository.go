package adapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ repository.MessageRepository = (*PgMessageRepository)(nil)

const messageColumns = `id::text, user_id::text, original_message, transformed_message, context,
	communication_elements, delivery_tips, is_shared, created_at`

func (r *PgMessageRepository) Create(ctx context.Context, m message.Message) (string, error) {
	elements, err := json.Marshal(m.CommunicationElements)
	if err != nil {
		return "", err
	}
	tips, err := json.Marshal(m.DeliveryTips)
	if err != nil {
		return "", err
	}
	var id string
	err = r.pool.QueryRow(ctx, `
		INSERT INTO messages (user_id, original_message, transformed_message, context,
			communication_elements, delivery_tips, is_shared, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5::jsonb, $6::jsonb, $7, $8)
		RETURNING id::text
	`, m.UserID, m.OriginalMessage, m.TransformedMessage, m.Context, string(elements), string(tips), m.IsShared, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgMessageRepository) FindByID(ctx context.Context, id string) (*message.Message, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1::uuid`, id)
	m, err := scanMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, message.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PgMessageRepository) ListByUser(ctx context.Context, userID string, sharedOnly bool, limit int, offset int) ([]message.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE user_id = $1::uuid AND (NOT $2 OR is_shared)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, userID, sharedOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []message.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func scanMessage(row pgx.Row) (*message.Message, error) {
	var (
		m              message.Message
		elements, tips []byte
	)
	if err := row.Scan(&m.ID, &m.UserID, &m.OriginalMessage, &m.TransformedMessage, &m.Context,
		&elements, &tips, &m.IsShared, &m.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(elements, &m.CommunicationElements); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tips, &m.DeliveryTips); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) CreateResponse(ctx context.Context, resp message.Response) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO message_responses (message_id, user_id, content, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, resp.MessageID, resp.UserID, resp.Content, resp.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgMessageRepository) ListResponses(ctx context.Context, messageID string) ([]message.Response, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, message_id::text, user_id::text, content, created_at
		FROM message_responses
		WHERE message_id = $1::uuid
		ORDER BY created_at
	`, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []message.Response{}
	for rows.Next() {
		var resp message.Response
		if err := rows.Scan(&resp.ID, &resp.MessageID, &resp.UserID, &resp.Content, &resp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
