// Package flash provides one-time notices that survive a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the cookie used for one-time notices.
const CookieName = "taskleaf_flash"

// Kind classifies how a notice is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindDanger  Kind = "danger"
)

// Notice is one flash message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success creates a success notice.
func Success(message string) Notice {
	return Notice{Kind: KindSuccess, Message: message}
}

// Write stores a flash notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if notice.Message == "" {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads and clears the flash notice cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	Clear(w, r)
	return decode(cookie.Value)
}

// Clear expires any flash notice cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
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

func decode(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	if notice.Message == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindSuccess, KindDanger:
		return notice, true
	default:
		return Notice{}, false
	}
}
