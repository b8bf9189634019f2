package httpx

import (
	"net/http"
	"time"
)

// AccessTokenCookie carries the access token for browser clients.
const AccessTokenCookie = "access_token"

// CookieOptions controls the access token cookie.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// SetAccessTokenCookie stores token in an HttpOnly, SameSite=Lax cookie on path /.
func SetAccessTokenCookie(w http.ResponseWriter, token string, opts CookieOptions, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(opts.TTL),
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessTokenCookie expires the access token cookie.
func ClearAccessTokenCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
