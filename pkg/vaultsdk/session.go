package vaultsdk

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Session represents an authenticated session. A request rejected with 401
// triggers one token refresh and a retry.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh replaces the session tokens with a freshly issued pair.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrNoRefreshToken
	}

	pair, err := s.client.RefreshTokens(ctx, s.refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	return nil
}

// doAuthRequest performs a request with the session's bearer token.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	body, err := encodeBody(payload)
	if err != nil {
		return nil, err
	}

	token := s.AccessToken()
	resp, err := s.send(ctx, method, path, body, token)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	s.mu.Lock()
	if s.accessToken == token {
		if rerr := s.refreshLocked(ctx); rerr != nil {
			s.mu.Unlock()
			// Surface the original 401 to the caller.
			return resp, nil
		}
	}
	token = s.accessToken
	s.mu.Unlock()

	resp.Body.Close()
	return s.send(ctx, method, path, body, token)
}

func (s *Session) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	req, err := s.client.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// getJSON is a GET with an expected 200 body.
func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// GetCurrentUser returns the authenticated user.
func (s *Session) GetCurrentUser(ctx context.Context) (*CurrentUser, error) {
	var u CurrentUser
	if err := s.getJSON(ctx, "/api/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
