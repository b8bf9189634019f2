package sqldb

import (
	"context"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

type invitationsRepo struct {
	c conn
}

const invitationColumns = `id, owner_id, workspace_id, email, status, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var (
		inv    domain.Invitation
		status string
	)
	if err := row.Scan(&inv.ID, &inv.OwnerID, &inv.WorkspaceID, &inv.Email, &status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return domain.Invitation{}, err
	}
	inv.Status = domain.InvitationStatus(status)
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO workspace_sharing_invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.OwnerID, inv.WorkspaceID, inv.Email, string(inv.Status), utc(inv.CreatedAt), utc(inv.UpdatedAt),
	)
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.c.queryRow(ctx,
		`SELECT `+invitationColumns+` FROM workspace_sharing_invitations WHERE id = ?`, id,
	))
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error {
	return mustAffect(r.c.exec(ctx,
		`UPDATE workspace_sharing_invitations SET status = ?, updated_at = ? WHERE id = ?`,
		string(domain.InvitationAccepted), utc(at), id,
	))
}

func (r *invitationsRepo) ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Invitation, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+invitationColumns+`
		FROM workspace_sharing_invitations
		WHERE workspace_id = ?
		ORDER BY created_at, id`,
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Invitation{}
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
