package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ repository.UserRepository = (*PgUserRepository)(nil)

const userColumns = `id::text, username, email, password_hash, display_name, avatar_url, created_at, updated_at`

func (r *PgUserRepository) Create(ctx context.Context, u user.User) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id::text
	`, u.Username, u.Email, u.PasswordHash, u.DisplayName, u.CreatedAt).Scan(&id)
	if err != nil {
		return "", mapUniqueErr(err)
	}
	return id, nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1::uuid`, id)
}

func (r *PgUserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1 OR email = lower($1) LIMIT 1`, login)
}

func (r *PgUserRepository) UpdateProfile(ctx context.Context, id string, displayName string, email string) (*user.User, error) {
	u, err := r.one(ctx, `
		UPDATE users SET display_name = $2, email = $3, updated_at = $4
		WHERE id = $1::uuid
		RETURNING `+userColumns, id, displayName, email, time.Now().UTC())
	if err != nil {
		return nil, mapUniqueErr(err)
	}
	return u, nil
}

func (r *PgUserRepository) SaveAvatar(ctx context.Context, a user.Avatar, avatarURL string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_avatars (user_id, content_type, data, prompt, created_at)
			VALUES ($1::uuid, $2, $3, $4, $5)
			ON CONFLICT (user_id)
			DO UPDATE SET content_type = EXCLUDED.content_type,
			              data = EXCLUDED.data,
			              prompt = EXCLUDED.prompt,
			              created_at = EXCLUDED.created_at
		`, a.UserID, a.ContentType, a.Data, a.Prompt, a.CreatedAt); err != nil {
			return err
		}
		ct, err := tx.Exec(ctx, `UPDATE users SET avatar_url = $2, updated_at = $3 WHERE id = $1::uuid`, a.UserID, avatarURL, a.CreatedAt)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

func (r *PgUserRepository) GetAvatar(ctx context.Context, userID string) (*user.Avatar, error) {
	var a user.Avatar
	err := r.pool.QueryRow(ctx, `
		SELECT user_id::text, content_type, data, prompt, created_at
		FROM user_avatars WHERE user_id = $1::uuid
	`, userID).Scan(&a.UserID, &a.ContentType, &a.Data, &a.Prompt, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrAvatarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgUserRepository) one(ctx context.Context, sql string, args ...any) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.DisplayName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func mapUniqueErr(err error) error {
	switch constraint, ok := database.UniqueViolation(err); {
	case ok && constraint == "users_username_key":
		return user.ErrUsernameTaken
	case ok && constraint == "users_email_key":
		return user.ErrEmailTaken
	default:
		return err
	}
}
