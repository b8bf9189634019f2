//go:build e2e

package vault_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/app"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

// TestPostgresDriver runs the service in-process against a real PostgreSQL
// server.
func TestPostgresDriver(t *testing.T) {
	cfg := app.Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		DBDriver:             app.DriverPostgres,
		DatabaseURL:          setupPostgres(t),
		JWTSecret:            jwtSecret,
		MasterKey:            masterKey,
		AccessTokenTTL:       time.Hour,
		RefreshTokenTTL:      24 * time.Hour,
		CookieTTL:            time.Hour,
		ClientURL:            "http://client.test",
		Notifier:             app.NotifierLog,
		OTPTTL:               5 * time.Minute,
		OTPCapacity:          100,
		AdminEmail:           adminEmail,
		AdminPassword:        adminPassword,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Minute,
	}
	require.NoError(t, cfg.Validate())

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	client := vaultsdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	health, err := client.GetReadiness(ctx)
	assertHealthy(t, health, err)

	admin, err := client.Authenticate(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	carol := registerAndConfirm(t, client, admin, "Carol", "carol@vault.test", "carol-pass")

	acc, err := carol.StoreAccount(ctx, vaultsdk.AccountRequest{Domain: "school.edu.vn", Username: "carol", Password: "p@ss"})
	require.NoError(t, err)

	updated, err := carol.UpdateAccount(ctx, acc.ID, vaultsdk.AccountRequest{Domain: "school.edu.vn", Username: "carol2", Password: "n3w"})
	require.NoError(t, err)
	require.Equal(t, "carol2", updated.Username)
	require.Equal(t, "n3w", updated.Password)

	ws, err := carol.CreateWorkspace(ctx, vaultsdk.WorkspaceRequest{Name: "Solo", Accounts: []string{acc.ID}})
	require.NoError(t, err)
	require.NoError(t, carol.DeleteWorkspace(ctx, ws.ID))

	views, err := carol.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Empty(t, views)

	_, err = admin.RestoreWorkspace(ctx, ws.ID)
	require.NoError(t, err)

	views, err = carol.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	require.NoError(t, carol.Refresh(ctx))
	_, err = carol.GetCurrentUser(ctx)
	require.NoError(t, err)

	stats, err := admin.GetUserRegistrations(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stats.Data)
}
