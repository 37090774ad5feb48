package middleware

import (
	"context"
	"net/http"

	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/models"
	"github.com/ymurata/taskleaf/internal/session"
	"github.com/ymurata/taskleaf/internal/storage"
)

type contextKey string

const currentUserKey contextKey = "current_user"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

type AuthMiddleware struct {
	sessions session.Store
	users    storage.UserStore
	log      *logger.Logger
}

func NewAuthMiddleware(sessions session.Store, users storage.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		users:    users,
		log:      logger.New("auth-middleware"),
	}
}

// RequireAuth resolves the session cookie to a user exactly once per
// request and stores it in the context. Requests without a resolvable
// identity are redirected to the login page and the handler never runs. A
// token referencing a deleted user counts as anonymous, not as an error.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := session.ReadCookie(r)
		if !ok {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		userID, err := m.sessions.Resolve(r.Context(), token)
		if err != nil {
			m.log.Error("Failed to resolve session: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if userID == "" {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		user, err := m.users.GetUserByID(r.Context(), userID)
		if err != nil {
			m.log.Error("Failed to load user %s: %v", userID, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// CurrentUser returns the identity resolved by RequireAuth, or nil outside
// a guarded handler.
func CurrentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(currentUserKey).(*models.User); ok {
		return user
	}
	return nil
}
