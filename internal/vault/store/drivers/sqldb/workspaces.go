package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

type workspacesRepo struct {
	c conn
}

const workspaceColumns = `id, name, owner_id, created_at, updated_at, deleted_at`

func scanWorkspace(row interface{ Scan(...any) error }) (domain.Workspace, error) {
	var (
		w       domain.Workspace
		deleted sql.NullTime
	)
	if err := row.Scan(&w.ID, &w.Name, &w.OwnerID, &w.CreatedAt, &w.UpdatedAt, &deleted); err != nil {
		return domain.Workspace{}, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	w.DeletedAt = mapNullTimePtr(deleted)
	return w, nil
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO workspaces (id, name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.OwnerID, utc(w.CreatedAt), utc(w.UpdatedAt),
	)
	return err
}

func (r *workspacesRepo) GetWorkspaceByOwner(ctx context.Context, ownerID, id string) (domain.Workspace, error) {
	w, err := scanWorkspace(r.c.queryRow(ctx, `
		SELECT `+workspaceColumns+`
		FROM workspaces
		WHERE id = ? AND owner_id = ? AND deleted_at IS NULL`,
		id, ownerID,
	))
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

// GetWorkspaceByID returns the workspace whether or not it is deleted.
func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	w, err := scanWorkspace(r.c.queryRow(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = ?`, id,
	))
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

func (r *workspacesRepo) RenameWorkspace(ctx context.Context, id, name string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE workspaces SET name = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		name, utc(at), id,
	))
}

// ReplaceWorkspaceAccounts swaps the account set of a workspace. Callers run
// it inside a transaction.
func (r *workspacesRepo) ReplaceWorkspaceAccounts(ctx context.Context, id string, accountIDs []string) error {
	if _, err := r.c.exec(ctx, `DELETE FROM workspace_accounts WHERE workspace_id = ?`, id); err != nil {
		return err
	}
	for _, accountID := range dedupe(accountIDs) {
		if _, err := r.c.exec(ctx, `
			INSERT INTO workspace_accounts (workspace_id, account_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING`,
			id, accountID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *workspacesRepo) SoftDeleteWorkspace(ctx context.Context, ownerID, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx, `
		UPDATE workspaces
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND owner_id = ? AND deleted_at IS NULL`,
		utc(at), utc(at), id, ownerID,
	))
}

func (r *workspacesRepo) RestoreWorkspace(ctx context.Context, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE workspaces SET deleted_at = NULL, updated_at = ? WHERE id = ?`,
		utc(at), id,
	))
}

// AddWorkspaceMember is idempotent.
func (r *workspacesRepo) AddWorkspaceMember(ctx context.Context, workspaceID, userID string) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO workspace_users (workspace_id, user_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING`,
		workspaceID, userID,
	)
	return err
}

func (r *workspacesRepo) ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]domain.UserRef, error) {
	rows, err := r.c.query(ctx, `
		SELECT u.id, u.name
		FROM workspace_users wu
		JOIN users u ON u.id = wu.user_id
		WHERE wu.workspace_id = ?
		ORDER BY u.name, u.id`,
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.UserRef{}
	for rows.Next() {
		var ref domain.UserRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// ListWorkspacesForUser returns every live workspace userID owns or belongs
// to, with owner, members and live accounts attached. Account passwords are
// returned sealed.
func (r *workspacesRepo) ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceView, error) {
	views, err := r.listVisible(ctx, userID)
	if err != nil || len(views) == 0 {
		return views, err
	}

	ids := make([]any, len(views))
	index := make(map[string]int, len(views))
	for i, v := range views {
		ids[i] = v.ID
		index[v.ID] = i
	}

	if err := r.attachMembers(ctx, ids, views, index); err != nil {
		return nil, err
	}
	if err := r.attachAccounts(ctx, ids, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *workspacesRepo) listVisible(ctx context.Context, userID string) ([]domain.WorkspaceView, error) {
	rows, err := r.c.query(ctx, `
		SELECT w.id, w.name, o.id, o.name
		FROM workspaces w
		JOIN users o ON o.id = w.owner_id
		WHERE w.deleted_at IS NULL
		  AND (w.owner_id = ? OR EXISTS (
			SELECT 1 FROM workspace_users wu
			WHERE wu.workspace_id = w.id AND wu.user_id = ?
		  ))
		ORDER BY w.created_at DESC, w.id DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []domain.WorkspaceView{}
	for rows.Next() {
		v := domain.WorkspaceView{Members: []domain.UserRef{}, Accounts: []domain.Account{}}
		if err := rows.Scan(&v.ID, &v.Name, &v.Owner.ID, &v.Owner.Name); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *workspacesRepo) attachMembers(ctx context.Context, ids []any, views []domain.WorkspaceView, index map[string]int) error {
	rows, err := r.c.query(ctx, `
		SELECT wu.workspace_id, u.id, u.name
		FROM workspace_users wu
		JOIN users u ON u.id = wu.user_id
		WHERE wu.workspace_id IN (`+placeholders(len(ids))+`)
		ORDER BY u.name, u.id`,
		ids...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			wsID string
			ref  domain.UserRef
		)
		if err := rows.Scan(&wsID, &ref.ID, &ref.Name); err != nil {
			return err
		}
		if i, ok := index[wsID]; ok {
			views[i].Members = append(views[i].Members, ref)
		}
	}
	return rows.Err()
}

func (r *workspacesRepo) attachAccounts(ctx context.Context, ids []any, views []domain.WorkspaceView, index map[string]int) error {
	rows, err := r.c.query(ctx, `
		SELECT wa.workspace_id, a.id, a.user_id, a.domain, a.username, a.password, a.created_at, a.updated_at, a.deleted_at
		FROM workspace_accounts wa
		JOIN accounts a ON a.id = wa.account_id
		WHERE a.deleted_at IS NULL AND wa.workspace_id IN (`+placeholders(len(ids))+`)
		ORDER BY a.created_at DESC, a.id DESC`,
		ids...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			wsID    string
			a       domain.Account
			deleted sql.NullTime
		)
		if err := rows.Scan(&wsID, &a.ID, &a.UserID, &a.Domain, &a.Username, &a.Password, &a.CreatedAt, &a.UpdatedAt, &deleted); err != nil {
			return err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		a.UpdatedAt = a.UpdatedAt.UTC()
		a.DeletedAt = mapNullTimePtr(deleted)
		if i, ok := index[wsID]; ok {
			views[i].Accounts = append(views[i].Accounts, a)
		}
	}
	return rows.Err()
}
