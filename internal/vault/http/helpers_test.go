package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
	"github.com/aussiebroadwan/vaultshare/pkg/otpcache"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	testIssuer    = "vaultshare"
	testClientURL = "http://client.test"
)

type testServer struct {
	router    *Router
	store     store.Store
	notes     *notify.Recorder
	bootstrap *service.BootstrapService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	signer, err := jwtx.NewHS256Signer([]byte(testSecret))
	require.NoError(t, err)
	verifier := jwtx.NewHS256Verifier([]byte(testSecret), testIssuer, 0)

	sealer, err := cryptox.NewSealer([]byte("test-master-key"))
	require.NoError(t, err)

	notes := &notify.Recorder{}
	tokens := &service.TokenService{
		Signer:     signer,
		Verifier:   verifier,
		Issuer:     testIssuer,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(verifier, "test", st, logger, testClientURL)
	r.UserService = &service.UserService{
		Store:     st,
		Tokens:    tokens,
		OTP:       otpcache.New(otpcache.DefaultCapacity, otpcache.DefaultTTL),
		Notifier:  notes,
		ClientURL: testClientURL,
	}
	r.AccountService = &service.AccountService{Store: st, Sealer: sealer}
	r.WorkspaceService = &service.WorkspaceService{Store: st, Sealer: sealer}
	r.SharingService = &service.SharingService{Store: st, Notifier: notes, ClientURL: testClientURL}
	r.AdminService = &service.AdminService{Store: st}
	r.ApplyRoutes()

	return &testServer{
		router:    r,
		store:     st,
		notes:     notes,
		bootstrap: &service.BootstrapService{Store: st},
	}
}

// do sends a request through the router. body is encoded as JSON when set.
func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// activeUser registers and confirms a user through the API.
func (s *testServer) activeUser(t *testing.T, name, email, password string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/register", vaultsdk.RegisterRequest{Name: name, Email: email, Password: password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	u, err := s.store.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)

	rec = s.do(t, http.MethodPost, "/api/auth/confirm", vaultsdk.ConfirmEmailRequest{ID: u.ID}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return u.ID
}

// bearer logs in as an extension client and returns the access token.
func (s *testServer) bearer(t *testing.T, email, password string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/login", vaultsdk.LoginRequest{Email: email, Password: password},
		map[string]string{"Origin": vaultsdk.DefaultOrigin})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out vaultsdk.LoginResponse
	decode(t, rec, &out)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func (s *testServer) adminBearer(t *testing.T) string {
	t.Helper()
	_, err := s.bootstrap.CreateAdmin(context.Background(), "Root", "admin@x.com", "admin-pass")
	require.NoError(t, err)
	return s.bearer(t, "admin@x.com", "admin-pass")
}

func auth(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// requireAPIError checks the status and errorCode of an error response.
func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, want *vaultsdk.APIError) {
	t.Helper()
	require.Equal(t, want.Status, rec.Code, rec.Body.String())

	var body vaultsdk.ErrorResponse
	decode(t, rec, &body)
	require.Equal(t, want.Status, body.Status)
	require.Equal(t, want.ErrorCode, body.ErrorCode)
	require.Equal(t, want.Message, body.Message)
}
