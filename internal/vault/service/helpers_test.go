package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
	"github.com/aussiebroadwan/vaultshare/pkg/otpcache"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	testClientURL = "http://client.test"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type testEnv struct {
	store  store.Store
	notes  *notify.Recorder
	otp    *otpcache.Cache
	clock  *fakeClock
	sealer *cryptox.Sealer

	tokens     *TokenService
	users      *UserService
	accounts   *AccountService
	workspaces *WorkspaceService
	sharing    *SharingService
	admin      *AdminService
	bootstrap  *BootstrapService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))

	signer, err := jwtx.NewHS256Signer([]byte(testSecret))
	require.NoError(t, err)

	sealer, err := cryptox.NewSealer([]byte("test-master-key"))
	require.NoError(t, err)

	clk := &fakeClock{now: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)}
	otp := otpcache.New(otpcache.DefaultCapacity, otpcache.DefaultTTL, otpcache.WithClock(clk.Now))
	notes := &notify.Recorder{}

	tokens := &TokenService{
		Signer:     signer,
		Verifier:   jwtx.NewHS256Verifier([]byte(testSecret), "vaultshare", 0),
		Issuer:     "vaultshare",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}

	return &testEnv{
		store:  s,
		notes:  notes,
		otp:    otp,
		clock:  clk,
		sealer: sealer,
		tokens: tokens,
		users: &UserService{
			Store:     s,
			Tokens:    tokens,
			OTP:       otp,
			Notifier:  notes,
			ClientURL: testClientURL,
			Clock:     clk.Now,
		},
		accounts:   &AccountService{Store: s, Sealer: sealer, Clock: clk.Now},
		workspaces: &WorkspaceService{Store: s, Sealer: sealer, Clock: clk.Now},
		sharing:    &SharingService{Store: s, Notifier: notes, ClientURL: testClientURL, Clock: clk.Now},
		admin:      &AdminService{Store: s},
		bootstrap:  &BootstrapService{Store: s, Clock: clk.Now},
	}
}

// activeUser registers and confirms a user.
func (e *testEnv) activeUser(t *testing.T, name, email, password string) domain.User {
	t.Helper()
	ctx := context.Background()
	u, err := e.users.Register(ctx, name, email, password)
	require.NoError(t, err)
	require.NoError(t, e.users.ConfirmEmail(ctx, u.ID))
	return u
}

func (e *testEnv) storeAccount(t *testing.T, ownerID, domainName, username, password string) domain.Account {
	t.Helper()
	a, err := e.accounts.Create(context.Background(), ownerID, AccountInput{
		Domain:   domainName,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return a
}
