package httpx

import "net/http"

const msgForbidden = "Forbidden resource!"

// RequireRole admits only callers whose role satisfies allowed. It must run
// after AuthnMiddleware.
func RequireRole(allowed func(role string) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); !ok {
				WriteError(w, http.StatusUnauthorized, CodeUnauthenticated, msgUnauthenticated)
				return
			}

			role, _ := RoleFromContext(r.Context())
			if !allowed(role) {
				WriteError(w, http.StatusForbidden, CodeForbidden, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
