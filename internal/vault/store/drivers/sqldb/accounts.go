package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

type accountsRepo struct {
	c conn
}

const accountColumns = `id, user_id, domain, username, password, created_at, updated_at, deleted_at`

func scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var (
		a       domain.Account
		deleted sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Domain, &a.Username, &a.Password, &a.CreatedAt, &a.UpdatedAt, &deleted); err != nil {
		return domain.Account{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	a.DeletedAt = mapNullTimePtr(deleted)
	return a, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO accounts (id, user_id, domain, username, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Domain, a.Username, a.Password, utc(a.CreatedAt), utc(a.UpdatedAt),
	)
	return err
}

func (r *accountsRepo) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) GetAccountByOwner(ctx context.Context, ownerID, id string) (domain.Account, error) {
	a, err := scanAccount(r.c.queryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL`,
		id, ownerID,
	))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	return mustAffect(r.c.exec(ctx, `
		UPDATE accounts
		SET domain = ?, username = ?, password = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL`,
		a.Domain, a.Username, a.Password, utc(a.UpdatedAt), a.ID, a.UserID,
	))
}

func (r *accountsRepo) SoftDeleteAccount(ctx context.Context, ownerID, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx, `
		UPDATE accounts
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL`,
		utc(at), utc(at), id, ownerID,
	))
}

// RestoreAccount clears deleted_at regardless of owner. Restoring a live
// account is a no-op that still succeeds.
func (r *accountsRepo) RestoreAccount(ctx context.Context, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE accounts SET deleted_at = NULL, updated_at = ? WHERE id = ?`,
		utc(at), id,
	))
}

// FilterOwnedAccountIDs returns the subset of ids that are live accounts of
// ownerID, in input order with duplicates removed.
func (r *accountsRepo) FilterOwnedAccountIDs(ctx context.Context, ownerID string, ids []string) ([]string, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return []string{}, nil
	}

	args := make([]any, 0, len(unique)+1)
	args = append(args, ownerID)
	for _, id := range unique {
		args = append(args, id)
	}

	rows, err := r.c.query(ctx, `
		SELECT id FROM accounts
		WHERE user_id = ? AND deleted_at IS NULL AND id IN (`+placeholders(len(unique))+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owned := make(map[string]struct{}, len(unique))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owned[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(owned))
	for _, id := range unique {
		if _, ok := owned[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *accountsRepo) CountAccountsByDomain(ctx context.Context) ([]domain.DomainCount, error) {
	rows, err := r.c.query(ctx, `
		SELECT domain, COUNT(*)
		FROM accounts
		WHERE deleted_at IS NULL
		GROUP BY domain
		ORDER BY domain`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DomainCount
	for rows.Next() {
		var dc domain.DomainCount
		if err := rows.Scan(&dc.Domain, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
