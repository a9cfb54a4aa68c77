package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
)

type usersRepo struct {
	q queryer
}

const userColumns = `id, email, name, password_hash, avatar_url, is_active, created_at, last_login`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		avatarURL sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&avatarURL,
		&u.IsActive,
		&u.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.AvatarURL = mapNullStringPtr(avatarURL)
	u.LastLogin = mapNullTimePtr(lastLogin)
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, avatar_url, is_active, created_at, last_login)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Email,
		u.Name,
		u.PasswordHash,
		mapOptionalString(u.AvatarURL),
		u.IsActive,
		u.CreatedAt,
		mapOptionalTime(u.LastLogin),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`, at, userID)
	return err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID int64, name, avatarURL *string) error {
	// COALESCE keeps the stored value wherever the caller passed nil.
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET
			name = COALESCE(?, name),
			avatar_url = COALESCE(?, avatar_url)
		 WHERE id = ?`,
		mapOptionalString(name),
		mapOptionalString(avatarURL),
		userID,
	)
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, newHash, userID)
	return err
}

func (r *usersRepo) SetActive(ctx context.Context, userID int64, active bool) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET is_active = ? WHERE id = ?`, active, userID)
	return err
}
