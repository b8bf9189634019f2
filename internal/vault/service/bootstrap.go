package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// DefaultAdminName is used when an administrator is created without a name.
const DefaultAdminName = "Administrator"

// BootstrapService provisions administrator accounts.
type BootstrapService struct {
	Store store.Store
	Clock Clock
}

// CreateAdmin creates a confirmed Admin. It fails with
// ErrEmailAlreadyRegistered when the email is taken.
func (s *BootstrapService) CreateAdmin(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultAdminName
	}
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, ErrMissingInput
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.Clock.now()
	u := domain.User{
		ID:              idx.New().String(),
		Name:            name,
		Email:           email,
		PasswordHash:    hash,
		IsAuthenticated: true,
		Role:            domain.RoleAdmin,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailAlreadyRegistered
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("admin created", slog.String("user_id", u.ID))
	return u, nil
}

// EnsureAdmin creates the configured administrator on first start. It is a
// no-op when email is empty or already registered.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	if _, err := s.CreateAdmin(ctx, DefaultAdminName, email, password); err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
