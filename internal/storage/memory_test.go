package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ymurata/taskleaf/internal/models"
)

func TestMemoryTaskStore_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTaskStore()

	task := &models.Task{Name: "最初のタスク", UserID: "user-a"}
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetTask(ctx, "user-a", task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Name != "最初のタスク" {
		t.Fatalf("expected owner to see the task, got %+v", got)
	}

	got, err = store.GetTask(ctx, "user-b", task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected another user's lookup to miss")
	}

	if err := store.DeleteTask(ctx, "user-b", task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for another user's delete, got: %v", err)
	}

	other := &models.Task{ID: task.ID, UserID: "user-b", Name: "hijack"}
	if err := store.UpdateTask(ctx, other); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for another user's update, got: %v", err)
	}
}

func TestMemoryTaskStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTaskStore()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := store.CreateTask(ctx, &models.Task{Name: name, UserID: "user-a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if err := store.CreateTask(ctx, &models.Task{Name: "noise", UserID: "user-b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, err := store.ListTasks(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"third", "second", "first"} {
		if tasks[i].Name != want {
			t.Errorf("position %d: expected '%s', got '%s'", i, want, tasks[i].Name)
		}
	}
}

func TestMemoryUserStore_EmailUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := &models.User{Name: "ユーザーA", Email: "a@example.com", PasswordHash: "x"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := &models.User{Name: "someone else", Email: "a@example.com", PasswordHash: "y"}
	if err := store.CreateUser(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got: %v", err)
	}
}

func TestMemoryUserStore_NullSafeLookups(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || user != nil {
		t.Errorf("expected (nil, nil) for unknown email, got (%v, %v)", user, err)
	}

	user, err = store.GetUserByID(ctx, "missing-id")
	if err != nil || user != nil {
		t.Errorf("expected (nil, nil) for unknown id, got (%v, %v)", user, err)
	}
}
