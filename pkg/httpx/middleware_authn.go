package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

const msgUnauthenticated = "Authentication required!"

// AuthnMiddleware verifies the access token and injects its claims into the
// request context. Requests without a valid token get UNAUTHENTICATED.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := TokenFromRequest(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, CodeUnauthenticated, msgUnauthenticated)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, CodeUnauthenticated, msgUnauthenticated)
				return
			}

			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// TokenFromRequest returns the access token from the cookie, falling back to
// an Authorization bearer header when no cookie is present.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if len(authz) < 7 || !strings.EqualFold(authz[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[7:])
}
