package vaultsdk

import (
	"context"
	"net/url"
	"strconv"
)

// Admin operations. Every call here requires the Admin role.

// ListUsers returns one page of regular users. Zero values use the server
// defaults.
func (s *Session) ListUsers(ctx context.Context, page, limit int) (*UsersPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out UsersPage
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetUserRegistrations(ctx context.Context) (*RegistrationStats, error) {
	var out RegistrationStats
	if err := s.getJSON(ctx, "/api/dashboard/user-registrations", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetAccountsByDomain(ctx context.Context) ([]DomainCount, error) {
	var out []DomainCount
	if err := s.getJSON(ctx, "/api/dashboard/accounts-of-users", &out); err != nil {
		return nil, err
	}
	return out, nil
}
