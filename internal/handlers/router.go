package handlers

import (
	"net/http"

	"github.com/ymurata/taskleaf/internal/middleware"
	"github.com/ymurata/taskleaf/internal/session"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/views"
)

// NewRouter wires every route. The session handlers are the only ones
// outside the auth gate; everything else redirects to /login without a
// resolved identity.
func NewRouter(users storage.UserStore, tasks storage.TaskStore, sessions session.Store, v *views.Renderer) http.Handler {
	sessionHandler := NewSessionHandler(users, sessions, v)
	taskHandler := NewTaskHandler(tasks, v)
	adminHandler := NewAdminHandler(users, v)
	authMW := middleware.NewAuthMiddleware(sessions, users)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", sessionHandler.New)
	mux.HandleFunc("POST /login", sessionHandler.Create)
	mux.HandleFunc("DELETE /logout", sessionHandler.Destroy)

	mux.HandleFunc("GET /{$}", authMW.RequireAuth(taskHandler.Index))
	mux.HandleFunc("GET /tasks", authMW.RequireAuth(taskHandler.Index))
	mux.HandleFunc("GET /tasks/new", authMW.RequireAuth(taskHandler.New))
	mux.HandleFunc("POST /tasks", authMW.RequireAuth(taskHandler.Create))
	mux.HandleFunc("GET /tasks/{id}", authMW.RequireAuth(taskHandler.Show))
	mux.HandleFunc("GET /tasks/{id}/edit", authMW.RequireAuth(taskHandler.Edit))
	mux.HandleFunc("PUT /tasks/{id}", authMW.RequireAuth(taskHandler.Update))
	mux.HandleFunc("PATCH /tasks/{id}", authMW.RequireAuth(taskHandler.Update))
	mux.HandleFunc("DELETE /tasks/{id}", authMW.RequireAuth(taskHandler.Destroy))

	mux.HandleFunc("GET /admin/users", authMW.RequireAuth(adminHandler.Index))

	return middleware.MethodOverride(mux)
}
