package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// SharingService invites people into a workspace by email.
type SharingService struct {
	Store     store.Store
	Notifier  notify.Notifier
	ClientURL string
	Clock     Clock
}

// CreateInvitations records and mails one PENDING invitation per email, in
// order. On failure the invitations already created are returned with the
// error; they are not rolled back.
func (s *SharingService) CreateInvitations(ctx context.Context, ownerID, workspaceID string, emails []string) ([]domain.Invitation, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if ownerID == "" || workspaceID == "" || len(emails) == 0 {
		return nil, ErrMissingInput
	}

	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		e = NormalizeEmail(e)
		if e == "" {
			return nil, ErrMissingInput
		}
		normalized = append(normalized, e)
	}

	ws, err := s.Store.Workspaces().GetWorkspaceByOwner(ctx, ownerID, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	owner, err := s.Store.Users().GetUserByID(ctx, ws.OwnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	l := slogx.FromContext(ctx)
	created := make([]domain.Invitation, 0, len(normalized))
	for _, email := range normalized {
		now := s.Clock.now()
		inv := domain.Invitation{
			ID:          idx.New().String(),
			OwnerID:     owner.ID,
			WorkspaceID: ws.ID,
			Email:       email,
			Status:      domain.InvitationPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
			return created, err
		}
		created = append(created, inv)

		err := s.Notifier.Send(ctx, notify.Message{
			To:       email,
			Subject:  "Workspace Invitation",
			Template: notify.TemplateInvitationEmail,
			Context: map[string]any{
				"workspaceName": ws.Name,
				"ownerName":     owner.Name,
				"url":           s.ClientURL + "/confirm-invitation/" + inv.ID,
			},
		})
		if err != nil {
			l.Error("failed to send invitation", slog.String("invitation_id", inv.ID), slog.Any("error", err))
			return created, fmt.Errorf("send invitation: %w", err)
		}
	}

	l.Info("invitations sent", slog.String("workspace_id", ws.ID), slog.Int("count", len(created)))
	return created, nil
}

// ConfirmInvitation accepts an invitation and adds the invitee to the
// workspace. Membership has set semantics, so confirming again is harmless.
// A deleted workspace fails with ErrWorkspaceNotFound and the invitation
// stays pending.
func (s *SharingService) ConfirmInvitation(ctx context.Context, inviteID string) error {
	inviteID = strings.TrimSpace(inviteID)
	if inviteID == "" {
		return ErrMissingInput
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	invitee, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(inv.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	now := s.Clock.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		ws, err := tx.Workspaces().GetWorkspaceByID(ctx, inv.WorkspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return err
		}
		if ws.DeletedAt != nil {
			return ErrWorkspaceNotFound
		}

		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, now); err != nil {
			return err
		}

		// The owner is never listed among the members.
		if invitee.ID == ws.OwnerID {
			return nil
		}
		return tx.Workspaces().AddWorkspaceMember(ctx, ws.ID, invitee.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", inv.WorkspaceID),
		slog.String("user_id", invitee.ID),
	)
	return nil
}
