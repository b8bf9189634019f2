package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

func TestWorkspaceCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := env.activeUser(t, "Ann", "a@x.com", "secret")
	bob := env.activeUser(t, "Bob", "b@x.com", "secret")
	a1 := env.storeAccount(t, ann.ID, "gmail.com", "ann", "pw1")
	b1 := env.storeAccount(t, bob.ID, "gmail.com", "bob", "pw2")

	t.Run("validation", func(t *testing.T) {
		_, err := env.workspaces.Create(ctx, ann.ID, "", []string{a1.ID})
		require.ErrorIs(t, err, ErrMissingInput)

		_, err = env.workspaces.Create(ctx, ann.ID, "Team", nil)
		require.ErrorIs(t, err, ErrMissingInput)

		_, err = env.workspaces.Create(ctx, "ghost", "Team", []string{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("empty account list is allowed", func(t *testing.T) {
		w, err := env.workspaces.Create(ctx, ann.ID, "Empty", []string{})
		require.NoError(t, err)
		require.Empty(t, w.AccountIDs)
	})

	t.Run("foreign and unknown ids are ignored", func(t *testing.T) {
		w, err := env.workspaces.Create(ctx, ann.ID, "Team", []string{a1.ID, b1.ID, "unknown"})
		require.NoError(t, err)
		require.Equal(t, []string{a1.ID}, w.AccountIDs)
		require.Equal(t, ann.ID, w.OwnerID)
	})
}

func TestWorkspaceListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := env.activeUser(t, "Ann", "a@x.com", "secret")
	bob := env.activeUser(t, "Bob", "b@x.com", "secret")
	a1 := env.storeAccount(t, ann.ID, "gmail.com", "ann", "pw1")
	a2 := env.storeAccount(t, ann.ID, "facebook.com", "ann.fb", "pw2")

	w, err := env.workspaces.Create(ctx, ann.ID, "Team", []string{a1.ID})
	require.NoError(t, err)

	t.Run("owner sees decrypted accounts", func(t *testing.T) {
		views, err := env.workspaces.ListForUser(ctx, ann.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, domain.UserRef{ID: ann.ID, Name: "Ann"}, views[0].Owner)
		require.Empty(t, views[0].Members)
		require.Len(t, views[0].Accounts, 1)
		require.Equal(t, "pw1", views[0].Accounts[0].Password)
	})

	t.Run("non member sees nothing", func(t *testing.T) {
		views, err := env.workspaces.ListForUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, views)
	})

	t.Run("update replaces the account set", func(t *testing.T) {
		_, err := env.workspaces.Update(ctx, ann.ID, w.ID, "Renamed", []string{})
		require.ErrorIs(t, err, ErrMissingInput)

		_, err = env.workspaces.Update(ctx, bob.ID, w.ID, "Renamed", []string{a2.ID})
		require.ErrorIs(t, err, ErrWorkspaceNotFound)

		_, err = env.workspaces.Update(ctx, "ghost", w.ID, "Renamed", []string{a2.ID})
		require.ErrorIs(t, err, ErrUserNotFound)

		updated, err := env.workspaces.Update(ctx, ann.ID, w.ID, "Renamed", []string{a2.ID})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Name)
		require.Equal(t, []string{a2.ID}, updated.AccountIDs)

		views, err := env.workspaces.ListForUser(ctx, ann.ID)
		require.NoError(t, err)
		require.Equal(t, "Renamed", views[0].Name)
		require.Len(t, views[0].Accounts, 1)
		require.Equal(t, a2.ID, views[0].Accounts[0].ID)
	})

	t.Run("soft delete and restore", func(t *testing.T) {
		require.ErrorIs(t, env.workspaces.SoftDelete(ctx, bob.ID, w.ID), ErrWorkspaceNotFound)
		require.NoError(t, env.workspaces.SoftDelete(ctx, ann.ID, w.ID))

		views, err := env.workspaces.ListForUser(ctx, ann.ID)
		require.NoError(t, err)
		require.Empty(t, views)

		got, err := env.store.Workspaces().GetWorkspaceByID(ctx, w.ID)
		require.NoError(t, err)
		require.NotNil(t, got.DeletedAt)

		require.NoError(t, env.workspaces.Restore(ctx, w.ID))
		views, err = env.workspaces.ListForUser(ctx, ann.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)

		require.ErrorIs(t, env.workspaces.Restore(ctx, "missing"), ErrWorkspaceNotFound)
	})
}
