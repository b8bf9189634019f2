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
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// WorkspaceService manages workspaces and the accounts shared through them.
type WorkspaceService struct {
	Store  store.Store
	Sealer Sealer
	Clock  Clock
}

// Create makes a workspace owned by ownerID. accountIDs must be present but
// may be empty; ids that are not the owner's live accounts are dropped.
func (s *WorkspaceService) Create(ctx context.Context, ownerID, name string, accountIDs []string) (domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" || accountIDs == nil || ownerID == "" {
		return domain.Workspace{}, ErrMissingInput
	}
	if err := s.requireUser(ctx, ownerID); err != nil {
		return domain.Workspace{}, err
	}

	now := s.Clock.now()
	w := domain.Workspace{
		ID:        idx.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		owned, err := tx.Accounts().FilterOwnedAccountIDs(ctx, ownerID, accountIDs)
		if err != nil {
			return err
		}
		if err := tx.Workspaces().CreateWorkspace(ctx, w); err != nil {
			return err
		}
		if err := tx.Workspaces().ReplaceWorkspaceAccounts(ctx, w.ID, owned); err != nil {
			return err
		}
		w.AccountIDs = owned
		return nil
	})
	if err != nil {
		return domain.Workspace{}, err
	}

	slogx.FromContext(ctx).Info("workspace created",
		slog.String("workspace_id", w.ID),
		slog.Int("accounts", len(w.AccountIDs)),
	)
	return w, nil
}

// ListForUser returns every live workspace userID owns or is a member of,
// with account passwords opened.
func (s *WorkspaceService) ListForUser(ctx context.Context, userID string) ([]domain.WorkspaceView, error) {
	views, err := s.Store.Workspaces().ListWorkspacesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		for j := range views[i].Accounts {
			a := &views[i].Accounts[j]
			if a.Password, err = s.Sealer.Open(a.Password); err != nil {
				return nil, fmt.Errorf("open account %s: %w", a.ID, err)
			}
		}
	}
	return views, nil
}

// Update renames the workspace and replaces its account set.
func (s *WorkspaceService) Update(ctx context.Context, ownerID, id, name string, accountIDs []string) (domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || id == "" || name == "" || len(accountIDs) == 0 {
		return domain.Workspace{}, ErrMissingInput
	}
	if err := s.requireUser(ctx, ownerID); err != nil {
		return domain.Workspace{}, err
	}

	w, err := s.Store.Workspaces().GetWorkspaceByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Workspace{}, ErrWorkspaceNotFound
		}
		return domain.Workspace{}, err
	}

	now := s.Clock.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workspaces().RenameWorkspace(ctx, w.ID, name, now); err != nil {
			return err
		}
		owned, err := tx.Accounts().FilterOwnedAccountIDs(ctx, ownerID, accountIDs)
		if err != nil {
			return err
		}
		if err := tx.Workspaces().ReplaceWorkspaceAccounts(ctx, w.ID, owned); err != nil {
			return err
		}
		w.AccountIDs = owned
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Workspace{}, ErrWorkspaceNotFound
		}
		return domain.Workspace{}, err
	}

	w.Name = name
	w.UpdatedAt = now
	return w, nil
}

func (s *WorkspaceService) SoftDelete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return ErrMissingInput
	}
	if err := s.Store.Workspaces().SoftDeleteWorkspace(ctx, ownerID, id, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("workspace deleted", slog.String("workspace_id", id))
	return nil
}

// Restore clears the deletion mark without an ownership check.
func (s *WorkspaceService) Restore(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingInput
	}
	if err := s.Store.Workspaces().RestoreWorkspace(ctx, id, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("workspace restored", slog.String("workspace_id", id))
	return nil
}

func (s *WorkspaceService) requireUser(ctx context.Context, id string) error {
	if _, err := s.Store.Users().GetUserByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
