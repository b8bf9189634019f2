package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Refresh always re-issues with these values,
// regardless of what login was configured with.
const (
	DefaultAccessTokenTTL  = time.Hour
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// Claims carry the identity of a vault user. Access and refresh tokens use
// identical claims and differ only in their expiry.
type Claims struct {
	jwt.RegisteredClaims

	// UserID duplicates the subject under the "id" key that clients read.
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Identity is the minimal set of user fields embedded into a token.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// NewClaims builds claims for id that expire ttl after now.
func NewClaims(id Identity, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID: id.ID,
		Email:  id.Email,
		Name:   id.Name,
		Role:   id.Role,
	}
}

// Identity returns the user fields carried by the claims.
func (c *Claims) Identity() Identity {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	return Identity{ID: id, Email: c.Email, Name: c.Name, Role: c.Role}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. Two tokens
// minted in the same second for the same user still differ because of it.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn’t expired (exp) and isn’t before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
