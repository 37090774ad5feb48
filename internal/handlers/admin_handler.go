package handlers

import (
	"net/http"

	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/views"
)

// AdminHandler is a stub user-management surface. Any logged-in user can
// reach it.
// TODO: restrict to an admin role once the user model grows one.
type AdminHandler struct {
	users storage.UserStore
	views *views.Renderer
	log   *logger.Logger
}

func NewAdminHandler(users storage.UserStore, v *views.Renderer) *AdminHandler {
	return &AdminHandler{
		users: users,
		views: v,
		log:   logger.New("admin-handler"),
	}
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.log.Error("Failed to list users: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(h.views, h.log, w, r, http.StatusOK, "admin_users.html", &views.Data{Users: users})
}
