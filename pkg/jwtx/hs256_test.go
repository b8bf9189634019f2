package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newPair(t *testing.T) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)
	return signer, jwtx.NewHS256Verifier(testSecret, "vaultshare", 0)
}

func TestHS256RoundTrip(t *testing.T) {
	signer, verifier := newPair(t)
	require.Equal(t, "HS256", signer.Alg())

	id := jwtx.Identity{ID: "user-1", Email: "ann@example.com", Name: "Ann", Role: "Admin"}
	token, err := signer.Sign(jwtx.NewClaims(id, time.Hour, "vaultshare", time.Now()))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(token, "."))

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, id, claims.Identity())
}

func TestHS256RejectsWeakSecret(t *testing.T) {
	_, err := jwtx.NewHS256Signer([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer, verifier := newPair(t)
	id := jwtx.Identity{ID: "user-1", Email: "ann@example.com", Name: "Ann", Role: "User"}

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewClaims(id, time.Minute, "vaultshare", time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256Signer([]byte("ffffffffffffffffffffffffffffffff"))
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewClaims(id, time.Hour, "vaultshare", time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewClaims(id, time.Hour, "someone-else", time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("unsigned token", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewClaims(id, time.Hour, "vaultshare", time.Now()))
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("missing identity", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewClaims(jwtx.Identity{}, time.Hour, "vaultshare", time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
