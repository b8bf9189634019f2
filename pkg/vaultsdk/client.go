package vaultsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// DefaultOrigin identifies SDK clients to the server. Origins with the
// chrome-extension scheme receive tokens in the login body instead of a
// cookie.
const DefaultOrigin = "chrome-extension://vaultsdk"

// SDKClient is a client for the vaultshare API.
// It provides access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Origin is sent on every request. It must keep the chrome-extension
	// scheme for Login to return tokens.
	Origin string
}

// NewSDKClient creates a new vaultshare client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Origin: DefaultOrigin,
	}
}

// Authenticate logs in with email and password and returns a session
// holding the issued tokens.
func (c *SDKClient) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return c.NewSessionFromTokens(resp.AccessToken, resp.RefreshToken), nil
}

// NewSessionFromTokens creates a session from tokens obtained elsewhere.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}
