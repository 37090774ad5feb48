package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ymurata/taskleaf/internal/flash"
	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/middleware"
	"github.com/ymurata/taskleaf/internal/models"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/validation"
	"github.com/ymurata/taskleaf/internal/views"
)

type TaskHandler struct {
	tasks storage.TaskStore
	views *views.Renderer
	log   *logger.Logger
}

func NewTaskHandler(tasks storage.TaskStore, v *views.Renderer) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		views: v,
		log:   logger.New("task-handler"),
	}
}

// resolveTask loads the {id} task strictly within the current user's owned
// set. A miss and another user's task are both nil; the caller responds 404
// either way, so task ids never leak across accounts.
func (h *TaskHandler) resolveTask(w http.ResponseWriter, r *http.Request) *models.Task {
	user := middleware.CurrentUser(r.Context())

	task, err := h.tasks.GetTask(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		h.log.Error("Failed to get task: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if task == nil {
		http.NotFound(w, r)
		return nil
	}

	return task
}

// Index lists the current user's tasks, newest first.
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())

	tasks, err := h.tasks.ListTasks(r.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list tasks: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(h.views, h.log, w, r, http.StatusOK, "task_index.html", &views.Data{Tasks: tasks})
}

func (h *TaskHandler) Show(w http.ResponseWriter, r *http.Request) {
	task := h.resolveTask(w, r)
	if task == nil {
		return
	}

	render(h.views, h.log, w, r, http.StatusOK, "task_show.html", &views.Data{Task: task})
}

// New renders an empty creation form.
func (h *TaskHandler) New(w http.ResponseWriter, r *http.Request) {
	render(h.views, h.log, w, r, http.StatusOK, "task_new.html", &views.Data{Task: &models.Task{}})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())

	task := &models.Task{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		UserID:      user.ID,
	}

	if errs := validation.ValidateTask(task); len(errs) > 0 {
		render(h.views, h.log, w, r, http.StatusUnprocessableEntity, "task_new.html", &views.Data{
			Task:   task,
			Errors: errs.Messages(),
		})
		return
	}

	if err := h.tasks.CreateTask(r.Context(), task); err != nil {
		h.log.Error("Failed to create task: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.log.Debug("Created task %s for user %s", task.ID, user.ID)
	flash.Write(w, r, flash.Success(fmt.Sprintf("タスク「%s」を登録しました。", task.Name)))
	http.Redirect(w, r, "/tasks/"+task.ID, http.StatusSeeOther)
}

func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	task := h.resolveTask(w, r)
	if task == nil {
		return
	}

	render(h.views, h.log, w, r, http.StatusOK, "task_edit.html", &views.Data{Task: task})
}

// Update applies the form to an already-resolved owned task. A validation
// failure here is a request-level error, not a re-rendered form: the edit
// form was pre-filled with valid data, so invalid input only arrives
// outside the normal flow.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	task := h.resolveTask(w, r)
	if task == nil {
		return
	}

	task.Name = r.PostFormValue("name")
	task.Description = r.PostFormValue("description")

	if errs := validation.ValidateTask(task); len(errs) > 0 {
		h.log.Error("Update of task %s failed validation: %v", task.ID, errs)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.tasks.UpdateTask(r.Context(), task); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("Failed to update task: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("タスク「%s」を更新しました。", task.Name)))
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

func (h *TaskHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())

	task := h.resolveTask(w, r)
	if task == nil {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), user.ID, task.ID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("Failed to delete task: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("タスク「%s」を削除しました。", task.Name)))
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}
