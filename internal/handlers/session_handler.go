package handlers

import (
	"net/http"

	"github.com/ymurata/taskleaf/internal/auth"
	"github.com/ymurata/taskleaf/internal/flash"
	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/session"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/views"
)

type SessionHandler struct {
	users    storage.UserStore
	sessions session.Store
	views    *views.Renderer
	log      *logger.Logger
}

func NewSessionHandler(users storage.UserStore, sessions session.Store, v *views.Renderer) *SessionHandler {
	return &SessionHandler{
		users:    users,
		sessions: sessions,
		views:    v,
		log:      logger.New("session-handler"),
	}
}

// New renders the login form. Reachable without a session.
func (h *SessionHandler) New(w http.ResponseWriter, r *http.Request) {
	render(h.views, h.log, w, r, http.StatusOK, "login.html", nil)
}

// Create checks the submitted credentials and issues a session. An unknown
// email and a wrong password produce the same response, so the form leaks
// nothing about which accounts exist.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		h.log.Error("Failed to look up user: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if user == nil || auth.CheckPassword(user.PasswordHash, password) != nil {
		render(h.views, h.log, w, r, http.StatusUnprocessableEntity, "login.html", &views.Data{
			Email:       email,
			LoginFailed: true,
		})
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to create session: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	session.WriteCookie(w, r, token)
	flash.Write(w, r, flash.Success("ログインしました。"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Destroy tears down the whole session.
func (h *SessionHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if token, ok := session.ReadCookie(r); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.log.Error("Failed to destroy session: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	session.ClearCookie(w, r)
	flash.Write(w, r, flash.Success("ログアウトしました。"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
