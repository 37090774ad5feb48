// Package views renders the embedded HTML templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/ymurata/taskleaf/internal/flash"
	"github.com/ymurata/taskleaf/internal/models"
)

//go:embed templates/*.html
var files embed.FS

var pages = []string{
	"login.html",
	"task_index.html",
	"task_show.html",
	"task_new.html",
	"task_edit.html",
	"admin_users.html",
}

// Data is everything a page render can use.
type Data struct {
	User        *models.User
	Flash       *flash.Notice
	Task        *models.Task
	Tasks       []*models.Task
	Users       []*models.User
	Errors      []string
	Email       string
	LoginFailed bool
}

type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(files, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes a full page. The template executes into a buffer first so
// a template error never produces a half-written 200 response.
func (v *Renderer) Render(w http.ResponseWriter, status int, page string, data *Data) error {
	tmpl, ok := v.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}

	if data == nil {
		data = &Data{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
