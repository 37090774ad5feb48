package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ymurata/taskleaf/internal/auth"
	"github.com/ymurata/taskleaf/internal/models"
	"github.com/ymurata/taskleaf/internal/session"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/views"
)

// env runs the full router against in-memory stores, with a cookie jar so
// scenarios can span redirects the way a browser would.
type env struct {
	t        *testing.T
	router   http.Handler
	users    *storage.MemoryUserStore
	tasks    *storage.MemoryTaskStore
	sessions *session.MemoryStore
	jar      map[string]*http.Cookie
}

func newEnv(t *testing.T) *env {
	t.Helper()

	renderer, err := views.New()
	require.NoError(t, err)

	users := storage.NewMemoryUserStore()
	tasks := storage.NewMemoryTaskStore()
	sessions := session.NewMemoryStore(time.Hour)

	return &env{
		t:        t,
		router:   NewRouter(users, tasks, sessions, renderer),
		users:    users,
		tasks:    tasks,
		sessions: sessions,
		jar:      make(map[string]*http.Cookie),
	}
}

func (e *env) createUser(name, email, password string) *models.User {
	e.t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(e.t, err)

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	require.NoError(e.t, e.users.CreateUser(context.Background(), user))
	return user
}

func (e *env) createTask(user *models.User, name, description string) *models.Task {
	e.t.Helper()

	task := &models.Task{Name: name, Description: description, UserID: user.ID}
	require.NoError(e.t, e.tasks.CreateTask(context.Background(), task))
	return task
}

// do sends one request with the jar's cookies and folds Set-Cookie headers
// back into the jar.
func (e *env) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	e.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range e.jar {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(e.jar, c.Name)
		} else {
			e.jar[c.Name] = c
		}
	}

	return rec
}

func (e *env) get(path string) *httptest.ResponseRecorder {
	return e.do(http.MethodGet, path, nil)
}

func (e *env) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, path, form)
}

// login signs in through the real login flow.
func (e *env) login(email, password string) *httptest.ResponseRecorder {
	e.t.Helper()
	return e.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func (e *env) hasSessionCookie() bool {
	_, ok := e.jar[session.CookieName]
	return ok
}
