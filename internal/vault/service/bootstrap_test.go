package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.bootstrap.EnsureAdmin(ctx, "", "")
	require.NoError(t, err)
	require.False(t, created)

	created, err = env.bootstrap.EnsureAdmin(ctx, "Root@X.com", "secret")
	require.NoError(t, err)
	require.True(t, created)

	created, err = env.bootstrap.EnsureAdmin(ctx, "root@x.com", "secret")
	require.NoError(t, err)
	require.False(t, created)

	res, err := env.users.Login(ctx, "root@x.com", "secret")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, res.User.Role)
	require.Equal(t, DefaultAdminName, res.User.Name)
}

func TestCreateAdminDuplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.activeUser(t, "Ann", "a@x.com", "secret")

	_, err := env.bootstrap.CreateAdmin(ctx, "Ann", "a@x.com", "other")
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	_, err = env.bootstrap.CreateAdmin(ctx, "Ann", "", "other")
	require.ErrorIs(t, err, ErrMissingInput)
}
