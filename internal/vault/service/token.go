package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
)

// Refresh always mints a fresh pair with these lifetimes, independent of the
// configured login TTLs.
const (
	RefreshAccessTTL  = time.Hour
	RefreshRefreshTTL = 24 * time.Hour
)

// TokenService signs and verifies the access and refresh tokens of vault users.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Clock      Clock
}

// Issue signs a token for id that expires after ttl.
func (s *TokenService) Issue(id jwtx.Identity, ttl time.Duration) (string, error) {
	claims := jwtx.NewClaims(id, ttl, s.Issuer, s.Clock.now())
	return s.Signer.Sign(claims)
}

// Verify checks signature and expiry. Every failure is reported as
// ErrTokenInvalid wrapping the underlying cause.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	return claims, nil
}

// IssuePair signs the access and refresh tokens concurrently. If either
// signing fails the pair is discarded.
func (s *TokenService) IssuePair(ctx context.Context, u domain.User, accessTTL, refreshTTL time.Duration) (domain.TokenPair, error) {
	if accessTTL <= 0 {
		accessTTL = jwtx.DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = jwtx.DefaultRefreshTokenTTL
	}

	id := identity(u)
	var pair domain.TokenPair

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tok, err := s.Issue(id, accessTTL)
		if err != nil {
			return err
		}
		pair.AccessToken = tok
		return gctx.Err()
	})
	g.Go(func() error {
		tok, err := s.Issue(id, refreshTTL)
		if err != nil {
			return err
		}
		pair.RefreshToken = tok
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.TokenPair{}, err
		}
		return domain.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}
	return pair, nil
}

func identity(u domain.User) jwtx.Identity {
	return jwtx.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}
