package handlers

import (
	"net/http"

	"github.com/ymurata/taskleaf/internal/flash"
	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/middleware"
	"github.com/ymurata/taskleaf/internal/views"
)

// render fills in the per-request page chrome (current user, pending flash
// notice) and writes the page.
func render(v *views.Renderer, log *logger.Logger, w http.ResponseWriter, r *http.Request, status int, page string, data *views.Data) {
	if data == nil {
		data = &views.Data{}
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		data.Flash = &notice
	}
	if data.User == nil {
		data.User = middleware.CurrentUser(r.Context())
	}

	if err := v.Render(w, status, page, data); err != nil {
		log.Error("Failed to render %s: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
