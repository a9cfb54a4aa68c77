package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
)

type refreshTokensRepo struct {
	q queryer
}

const refreshTokenColumns = `id, user_id, token_hash, expires_at, revoked, created_at`

func scanRefreshToken(row *sql.Row) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.Revoked,
		&t.CreatedAt,
	)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *refreshTokensRepo) Create(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.UserID,
		t.TokenHash,
		t.ExpiresAt,
		t.Revoked,
		t.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetActive(ctx context.Context, tokenHash string, now time.Time) (domain.RefreshToken, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens
		 WHERE token_hash = ? AND revoked = 0 AND expires_at > ?`,
		tokenHash, now)
	return scanRefreshToken(row)
}

func (r *refreshTokensRepo) GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE token_hash = ?`,
		tokenHash)
	return scanRefreshToken(row)
}

func (r *refreshTokensRepo) Revoke(ctx context.Context, tokenHash string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked = 1 WHERE token_hash = ?`, tokenHash)
	return err
}

func (r *refreshTokensRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at <= ?`, now)
	return err
}
