package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

type usersRepo struct {
	c conn
}

const userColumns = `id, name, email, password_hash, is_authenticated, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAuthenticated, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsAuthenticated, string(u.Role), utc(u.CreatedAt), utc(u.UpdatedAt),
	)
	if r.c.d.uniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.c.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.c.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) MarkAuthenticated(ctx context.Context, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE users SET is_authenticated = ?, updated_at = ? WHERE id = ?`,
		true, utc(at), id,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, hash string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, utc(at), id,
	))
}

// ListUserSummaries pages through users of role, newest first, counting
// each user's live accounts.
func (r *usersRepo) ListUserSummaries(ctx context.Context, role domain.Role, limit, offset int) ([]domain.UserSummary, error) {
	rows, err := r.c.query(ctx, `
		SELECT u.id, u.name, u.email, u.is_authenticated, COUNT(a.id)
		FROM users u
		LEFT JOIN accounts a ON a.user_id = u.id AND a.deleted_at IS NULL
		WHERE u.role = ?
		GROUP BY u.id, u.name, u.email, u.is_authenticated, u.created_at
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT ? OFFSET ?`,
		string(role), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.UserSummary, 0, limit)
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.IsAuthenticated, &s.AccountsCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *usersRepo) CountUsersByRole(ctx context.Context, role domain.Role) (int, error) {
	var n int
	if err := r.c.queryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, string(role)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *usersRepo) ListRegistrationTimes(ctx context.Context, exclude domain.Role) ([]time.Time, error) {
	rows, err := r.c.query(ctx,
		`SELECT created_at FROM users WHERE role <> ? ORDER BY created_at`,
		string(exclude),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var t sql.NullTime
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		if t.Valid {
			out = append(out, t.Time.UTC())
		}
	}
	return out, rows.Err()
}
