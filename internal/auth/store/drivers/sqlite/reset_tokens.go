package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
)

type resetTokensRepo struct {
	q queryer
}

const resetTokenColumns = `id, email, token_hash, expires_at, used, created_at`

func scanResetToken(row *sql.Row) (domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	err := row.Scan(
		&t.ID,
		&t.Email,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.Used,
		&t.CreatedAt,
	)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *resetTokensRepo) Create(ctx context.Context, t domain.PasswordResetToken) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (id, email, token_hash, expires_at, used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.Email,
		t.TokenHash,
		t.ExpiresAt,
		t.Used,
		t.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *resetTokensRepo) GetActive(ctx context.Context, tokenHash string, now time.Time) (domain.PasswordResetToken, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+resetTokenColumns+` FROM password_reset_tokens
		 WHERE token_hash = ? AND used = 0 AND expires_at > ?`,
		tokenHash, now)
	return scanResetToken(row)
}

func (r *resetTokensRepo) MarkUsed(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE password_reset_tokens SET used = 1 WHERE id = ?`, id)
	return err
}

func (r *resetTokensRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= ?`, now)
	return err
}
