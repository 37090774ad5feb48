// Package session tracks logged-in identity with an opaque server-side
// token carried in a cookie.
package session

import (
	"context"
	"net/http"
	"strings"
)

// CookieName is the canonical session cookie name.
const CookieName = "taskleaf_session"

// Store maps opaque tokens to user ids for the lifetime of a login.
type Store interface {
	// Create issues a fresh token bound to the user id.
	Create(ctx context.Context, userID string) (string, error)
	// Resolve returns the user id behind a token, or "" when the token is
	// unknown or expired. An unknown token is not an error.
	Resolve(ctx context.Context, token string) (string, error)
	// Destroy invalidates a token. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}

// ReadCookie returns the trimmed session cookie value when present.
func ReadCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// WriteCookie sets the session cookie for the issued token.
func WriteCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
