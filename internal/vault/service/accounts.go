package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// Sealer encrypts stored credential passwords. *cryptox.Sealer satisfies it.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// AccountInput carries the editable fields of a stored credential.
type AccountInput struct {
	Domain   string
	Username string
	Password string
}

func (in AccountInput) normalize() (AccountInput, error) {
	in.Domain = strings.TrimSpace(in.Domain)
	in.Username = strings.TrimSpace(in.Username)
	if in.Domain == "" || in.Username == "" || in.Password == "" {
		return in, ErrMissingInput
	}
	return in, nil
}

// AccountService manages the credentials a user keeps in their vault.
// Passwords are sealed at rest and opened on every read.
type AccountService struct {
	Store  store.Store
	Sealer Sealer
	Clock  Clock
}

func (s *AccountService) Create(ctx context.Context, ownerID string, in AccountInput) (domain.Account, error) {
	in, err := in.normalize()
	if err != nil || ownerID == "" {
		return domain.Account{}, ErrMissingInput
	}

	sealed, err := s.Sealer.Seal(in.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("seal password: %w", err)
	}

	now := s.Clock.now()
	a := domain.Account{
		ID:        idx.New().String(),
		UserID:    ownerID,
		Domain:    in.Domain,
		Username:  in.Username,
		Password:  sealed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, a); err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("account stored", slog.String("account_id", a.ID), slog.String("domain", a.Domain))

	a.Password = in.Password
	return a, nil
}

// List returns the caller's live accounts, newest first.
func (s *AccountService) List(ctx context.Context, ownerID string) ([]domain.Account, error) {
	accounts, err := s.Store.Accounts().ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Password, err = s.Sealer.Open(accounts[i].Password); err != nil {
			return nil, fmt.Errorf("open account %s: %w", accounts[i].ID, err)
		}
	}
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, ownerID, id string) (domain.Account, error) {
	if ownerID == "" || id == "" {
		return domain.Account{}, ErrMissingInput
	}

	a, err := s.Store.Accounts().GetAccountByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	if a.Password, err = s.Sealer.Open(a.Password); err != nil {
		return domain.Account{}, fmt.Errorf("open account %s: %w", a.ID, err)
	}
	return a, nil
}

// Update replaces every field of an owned account and re-seals the password.
func (s *AccountService) Update(ctx context.Context, ownerID, id string, in AccountInput) (domain.Account, error) {
	in, err := in.normalize()
	if err != nil || ownerID == "" || id == "" {
		return domain.Account{}, ErrMissingInput
	}

	a, err := s.Store.Accounts().GetAccountByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	sealed, err := s.Sealer.Seal(in.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("seal password: %w", err)
	}

	a.Domain = in.Domain
	a.Username = in.Username
	a.Password = sealed
	a.UpdatedAt = s.Clock.now()
	if err := s.Store.Accounts().UpdateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	a.Password = in.Password
	return a, nil
}

func (s *AccountService) SoftDelete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return ErrMissingInput
	}
	if err := s.Store.Accounts().SoftDeleteAccount(ctx, ownerID, id, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("account deleted", slog.String("account_id", id))
	return nil
}

// Restore clears the deletion mark without an ownership check. Callers gate
// it to administrators.
func (s *AccountService) Restore(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingInput
	}
	if err := s.Store.Accounts().RestoreAccount(ctx, id, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("account restored", slog.String("account_id", id))
	return nil
}
