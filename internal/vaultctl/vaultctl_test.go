package vaultctl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/app"
	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
)

func testConfig(t *testing.T) app.Config {
	t.Helper()
	return app.Config{
		Env:          "dev",
		LogLevel:     "error",
		DBDriver:     app.DriverSQLite,
		DatabaseFile: filepath.Join(t.TempDir(), "vault.db"),
	}
}

// run executes vaultctl with args against cfg and returns stdout.
func run(t *testing.T, cfg app.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	cli := &CLI{LoadConfig: func() (app.Config, error) { return cfg, nil }}
	root := NewRootCommand(cli)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func migrated(t *testing.T) app.Config {
	t.Helper()
	cfg := testConfig(t)
	outp, err := run(t, cfg, "", "migrate")
	require.NoError(t, err)
	require.Contains(t, outp, "Migrations applied (sqlite)")
	return cfg
}

func TestCreateAdmin_WithPasswordFlag(t *testing.T) {
	cfg := migrated(t)

	outp, err := run(t, cfg, "", "create-admin", "--email", "Root@Example.com", "--password", "s3cret-pass")
	require.NoError(t, err)
	require.Contains(t, outp, "Created administrator root@example.com")

	st, err := app.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()

	u, err := st.Users().GetUserByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)
	require.Equal(t, service.DefaultAdminName, u.Name)
	require.NoError(t, cryptox.VerifyPassword("s3cret-pass", u.PasswordHash))
}

func TestCreateAdmin_PromptFromStdin(t *testing.T) {
	cfg := migrated(t)

	_, err := run(t, cfg, "typed-pass\n", "create-admin", "--email", "ops@example.com", "--name", "Ops")
	require.NoError(t, err)

	st, err := app.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()

	u, err := st.Users().GetUserByEmail(context.Background(), "ops@example.com")
	require.NoError(t, err)
	require.Equal(t, "Ops", u.Name)
	require.NoError(t, cryptox.VerifyPassword("typed-pass", u.PasswordHash))
}

func TestCreateAdmin_Generate(t *testing.T) {
	cfg := migrated(t)

	outp, err := run(t, cfg, "", "create-admin", "--email", "gen@example.com", "--generate")
	require.NoError(t, err)
	require.Regexp(t, `Password: [A-Za-z0-9]{12}\n`, outp)
}

func TestCreateAdmin_Errors(t *testing.T) {
	cfg := migrated(t)

	_, err := run(t, cfg, "", "create-admin")
	require.ErrorContains(t, err, "--email is required")

	_, err = run(t, cfg, "", "create-admin", "--email", "a@b.c", "--password", "x", "--generate")
	require.ErrorContains(t, err, "mutually exclusive")

	_, err = run(t, cfg, "\n", "create-admin", "--email", "a@b.c")
	require.ErrorContains(t, err, "password must not be empty")

	_, err = run(t, cfg, "", "create-admin", "--email", "dup@example.com", "--password", "pw")
	require.NoError(t, err)
	_, err = run(t, cfg, "", "create-admin", "--email", "dup@example.com", "--password", "pw")
	require.ErrorIs(t, err, service.ErrEmailAlreadyRegistered)
}

func TestUsersList(t *testing.T) {
	cfg := migrated(t)

	outp, err := run(t, cfg, "", "users", "list")
	require.NoError(t, err)
	require.Contains(t, outp, "No users found.")

	st, err := app.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	users := &service.UserService{Store: st, Notifier: &notify.Recorder{}}
	_, err = users.Register(context.Background(), "Alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	outp, err = run(t, cfg, "", "users", "list")
	require.NoError(t, err)
	require.Contains(t, outp, "alice@example.com")
	require.Contains(t, outp, "Page 1 of 1 (1 users)")

	outp, err = run(t, cfg, "", "users", "list", "--json", "--limit", "5")
	require.NoError(t, err)

	var page service.UserPage
	require.NoError(t, json.Unmarshal([]byte(outp), &page))
	require.Equal(t, 1, page.TotalItems)
	require.Len(t, page.Users, 1)
	require.False(t, page.Users[0].IsAuthenticated)
}

func TestStats(t *testing.T) {
	cfg := migrated(t)

	outp, err := run(t, cfg, "", "stats")
	require.NoError(t, err)
	require.Contains(t, outp, "DOMAIN")
	require.Contains(t, outp, "gmail.com")
	require.Contains(t, outp, "others")
}

func TestRestore_UnknownID(t *testing.T) {
	cfg := migrated(t)
	unknown := idx.New().String()

	_, err := run(t, cfg, "", "accounts", "restore", unknown)
	require.ErrorIs(t, err, service.ErrAccountNotFound)

	_, err = run(t, cfg, "", "workspaces", "restore", unknown)
	require.ErrorIs(t, err, service.ErrWorkspaceNotFound)

	_, err = run(t, cfg, "", "accounts", "restore", "missing")
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = run(t, cfg, "", "accounts", "restore")
	require.Error(t, err)
}

func TestRestore_DeletedAccount(t *testing.T) {
	cfg := migrated(t)
	ctx := context.Background()

	st, err := app.OpenStore(ctx, cfg)
	require.NoError(t, err)
	sealer, err := cryptox.NewSealer([]byte("vaultctl-test-key"))
	require.NoError(t, err)

	owner, err := (&service.BootstrapService{Store: st}).CreateAdmin(ctx, "Owner", "owner@example.com", "pw")
	require.NoError(t, err)
	accounts := &service.AccountService{Store: st, Sealer: sealer}
	acc, err := accounts.Create(ctx, owner.ID, service.AccountInput{Domain: "gmail.com", Username: "owner", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, accounts.SoftDelete(ctx, owner.ID, acc.ID))
	require.NoError(t, st.Close())

	outp, err := run(t, cfg, "", "accounts", "restore", strings.ToLower(acc.ID))
	require.NoError(t, err)
	require.Contains(t, outp, "Restored account "+acc.ID)
}

func TestHealth(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/readyz", r.URL.Path)
		body := map[string]any{"status": "ok", "uptime": "1m0s", "version": "test", "checks": map[string]string{"database": "ok"}}
		if status != http.StatusOK {
			body["status"] = "degraded"
			body["checks"] = map[string]string{"database": "unreachable"}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	cfg := testConfig(t)

	outp, err := run(t, cfg, "", "health", "--server", srv.URL)
	require.NoError(t, err)
	require.Contains(t, outp, "status:   ok")
	require.Contains(t, outp, "database: ok")

	status = http.StatusServiceUnavailable
	outp, err = run(t, cfg, "", "health", "--server", srv.URL)
	require.Error(t, err)
	require.Contains(t, outp, "degraded")
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cli := &CLI{LoadConfig: func() (app.Config, error) { return testConfig(t), nil }}
	root := NewRootCommand(cli)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"health", "--server", url})

	err := root.ExecuteContext(ctx)
	require.ErrorContains(t, err, "checking "+url)
}
