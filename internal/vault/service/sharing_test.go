package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
)

func TestCreateInvitations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := env.activeUser(t, "Ann", "a@x.com", "secret")
	bob := env.activeUser(t, "Bob", "b@x.com", "secret")

	w, err := env.workspaces.Create(ctx, ann.ID, "Team", []string{})
	require.NoError(t, err)

	t.Run("only the owner can invite", func(t *testing.T) {
		_, err := env.sharing.CreateInvitations(ctx, bob.ID, w.ID, []string{"c@x.com"})
		require.ErrorIs(t, err, ErrWorkspaceNotFound)

		_, err = env.sharing.CreateInvitations(ctx, ann.ID, w.ID, nil)
		require.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("one pending invitation and email per address", func(t *testing.T) {
		invs, err := env.sharing.CreateInvitations(ctx, ann.ID, w.ID, []string{"c@x.com", "D@x.com"})
		require.NoError(t, err)
		require.Len(t, invs, 2)
		require.Equal(t, "c@x.com", invs[0].Email)
		require.Equal(t, "d@x.com", invs[1].Email)

		for _, inv := range invs {
			require.Equal(t, domain.InvitationPending, inv.Status)
			require.Equal(t, ann.ID, inv.OwnerID)

			msg, ok := env.notes.Last(inv.Email)
			require.True(t, ok)
			require.Equal(t, notify.TemplateInvitationEmail, msg.Template)
			require.Equal(t, "Workspace Invitation", msg.Subject)
			require.Equal(t, "Team", msg.Context["workspaceName"])
			require.Equal(t, "Ann", msg.Context["ownerName"])
			require.Equal(t, testClientURL+"/confirm-invitation/"+inv.ID, msg.Context["url"])
		}
	})

	t.Run("failure keeps earlier invitations", func(t *testing.T) {
		env.notes.SetErr(errors.New("smtp down"))
		defer env.notes.SetErr(nil)

		before, err := env.store.Invitations().ListInvitationsByWorkspace(ctx, w.ID)
		require.NoError(t, err)

		invs, err := env.sharing.CreateInvitations(ctx, ann.ID, w.ID, []string{"e@x.com", "f@x.com"})
		require.Error(t, err)
		require.Len(t, invs, 1)

		after, err := env.store.Invitations().ListInvitationsByWorkspace(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
	})
}

func TestConfirmInvitation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := env.activeUser(t, "Ann", "a@x.com", "secret")
	bob := env.activeUser(t, "Bob", "bob@x.com", "secret")
	a1 := env.storeAccount(t, ann.ID, "gmail.com", "ann", "pw1")

	w, err := env.workspaces.Create(ctx, ann.ID, "Team", []string{a1.ID})
	require.NoError(t, err)

	invs, err := env.sharing.CreateInvitations(ctx, ann.ID, w.ID, []string{"bob@x.com", "stranger@x.com"})
	require.NoError(t, err)

	t.Run("unknown invitation", func(t *testing.T) {
		require.ErrorIs(t, env.sharing.ConfirmInvitation(ctx, "missing"), ErrInvitationNotFound)
		require.ErrorIs(t, env.sharing.ConfirmInvitation(ctx, ""), ErrMissingInput)
	})

	t.Run("invitee must be registered", func(t *testing.T) {
		require.ErrorIs(t, env.sharing.ConfirmInvitation(ctx, invs[1].ID), ErrUserNotFound)

		inv, err := env.store.Invitations().GetInvitationByID(ctx, invs[1].ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
	})

	t.Run("accepting adds the member", func(t *testing.T) {
		require.NoError(t, env.sharing.ConfirmInvitation(ctx, invs[0].ID))

		inv, err := env.store.Invitations().GetInvitationByID(ctx, invs[0].ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, inv.Status)

		views, err := env.workspaces.ListForUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, []domain.UserRef{{ID: bob.ID, Name: "Bob"}}, views[0].Members)
		require.Equal(t, "pw1", views[0].Accounts[0].Password)
	})

	t.Run("accepting twice keeps a single membership", func(t *testing.T) {
		require.NoError(t, env.sharing.ConfirmInvitation(ctx, invs[0].ID))

		members, err := env.store.Workspaces().ListWorkspaceMembers(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)

		inv, err := env.store.Invitations().GetInvitationByID(ctx, invs[0].ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, inv.Status)
	})

	t.Run("deleted workspace cannot be joined", func(t *testing.T) {
		carl := env.activeUser(t, "Carl", "carl@x.com", "secret")
		gone, err := env.workspaces.Create(ctx, ann.ID, "Gone", []string{})
		require.NoError(t, err)

		inv, err := env.sharing.CreateInvitations(ctx, ann.ID, gone.ID, []string{"carl@x.com"})
		require.NoError(t, err)
		require.NoError(t, env.workspaces.SoftDelete(ctx, ann.ID, gone.ID))

		require.ErrorIs(t, env.sharing.ConfirmInvitation(ctx, inv[0].ID), ErrWorkspaceNotFound)

		pending, err := env.store.Invitations().GetInvitationByID(ctx, inv[0].ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, pending.Status)

		require.NoError(t, env.workspaces.Restore(ctx, gone.ID))
		views, err := env.workspaces.ListForUser(ctx, carl.ID)
		require.NoError(t, err)
		require.Empty(t, views)
	})

	t.Run("owner accepting own invitation is not a member", func(t *testing.T) {
		inv, err := env.sharing.CreateInvitations(ctx, ann.ID, w.ID, []string{"a@x.com"})
		require.NoError(t, err)

		require.NoError(t, env.sharing.ConfirmInvitation(ctx, inv[0].ID))

		accepted, err := env.store.Invitations().GetInvitationByID(ctx, inv[0].ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, accepted.Status)

		members, err := env.store.Workspaces().ListWorkspaceMembers(ctx, w.ID)
		require.NoError(t, err)
		require.NotContains(t, members, domain.UserRef{ID: ann.ID, Name: "Ann"})
		require.Equal(t, []domain.UserRef{{ID: bob.ID, Name: "Bob"}}, members)
	})
}
