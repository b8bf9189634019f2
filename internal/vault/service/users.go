package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
	"github.com/aussiebroadwan/vaultshare/pkg/otpcache"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// OTP codes are drawn uniformly from this range.
const (
	otpMin = 100000
	otpMax = 999999
)

// UserService owns registration, confirmation, login and password recovery.
type UserService struct {
	Store     store.Store
	Tokens    *TokenService
	OTP       *otpcache.Cache
	Notifier  notify.Notifier
	ClientURL string
	Clock     Clock
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Tokens domain.TokenPair
	User   domain.PublicUser
}

// NormalizeEmail trims and lower-cases an address so lookups are stable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a pending user and mails a confirmation link.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, ErrMissingInput
	}

	l := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.Clock.now()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailAlreadyRegistered
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))

	err = s.Notifier.Send(ctx, notify.Message{
		To:       u.Email,
		Subject:  "Verify email",
		Template: notify.TemplateVerificationEmail,
		Context: map[string]any{
			"url": s.ClientURL + "/confirm-email/" + u.ID,
		},
	})
	if err != nil {
		// The user row stays; the caller sees the failure.
		l.Error("failed to send verification email", slog.String("user_id", u.ID), slog.Any("error", err))
		return u, fmt.Errorf("send verification email: %w", err)
	}

	return u, nil
}

// ConfirmEmail activates the user with the given id. Confirming twice is harmless.
func (s *UserService) ConfirmEmail(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingInput
	}

	if err := s.Store.Users().MarkAuthenticated(ctx, id, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// Login checks credentials and issues a token pair with the configured TTLs.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrMissingInput
	}

	u, err := s.activeUser(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Info("login with incorrect password", slog.String("user_id", u.ID))
			return LoginResult{}, ErrIncorrectPassword
		}
		return LoginResult{}, err
	}

	pair, err := s.Tokens.IssuePair(ctx, u, s.Tokens.AccessTTL, s.Tokens.RefreshTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Tokens: pair, User: u.Public()}, nil
}

// ForgotPassword stores a fresh OTP for email and mails it. Delivery is
// best effort: a send failure is logged, not returned.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrMissingInput
	}

	u, err := s.activeUser(ctx, email)
	if err != nil {
		return err
	}

	code, err := cryptox.NumericCode(otpMin, otpMax)
	if err != nil {
		return err
	}
	s.OTP.Set(otpcache.Key(email), code)

	err = s.Notifier.Send(ctx, notify.Message{
		To:       u.Email,
		Subject:  "Forgot password",
		Template: notify.TemplatePasswordResetRequest,
		Context: map[string]any{
			"verificationToken": code,
		},
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to send password reset email", slog.String("user_id", u.ID), slog.Any("error", err))
	}
	return nil
}

// VerifyOTP consumes a matching code. A wrong code leaves the stored one usable.
func (s *UserService) VerifyOTP(ctx context.Context, email, code string) error {
	email = NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return ErrMissingInput
	}

	key := otpcache.Key(email)
	stored, ok := s.OTP.Get(key)
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrOTPInvalid
	}
	s.OTP.Delete(key)
	return nil
}

// ResetPassword replaces the password of an active user.
func (s *UserService) ResetPassword(ctx context.Context, email, password string) error {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return ErrMissingInput
	}

	u, err := s.activeUser(ctx, email)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", u.ID))
	return nil
}

// Refresh exchanges a valid refresh token for a new 1h/1d pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return domain.TokenPair{}, ErrMissingInput
	}

	claims, err := s.Tokens.Verify(refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(claims.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUserNotFound
		}
		return domain.TokenPair{}, err
	}

	return s.Tokens.IssuePair(ctx, u, RefreshAccessTTL, RefreshRefreshTTL)
}

// CurrentUser returns the public projection of the user with id.
func (s *UserService) CurrentUser(ctx context.Context, id string) (domain.PublicUser, error) {
	if id == "" {
		return domain.PublicUser{}, ErrMissingInput
	}
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

// activeUser loads a user by email and rejects pending accounts.
func (s *UserService) activeUser(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if !u.IsAuthenticated {
		return domain.User{}, ErrEmailNotAuthenticated
	}
	return u, nil
}
