package storage

import (
	"context"
	"errors"

	"github.com/ymurata/taskleaf/internal/models"
)

var (
	// ErrTaskNotFound covers both a missing row and a row owned by another
	// user; callers cannot tell the two apart.
	ErrTaskNotFound = errors.New("task not found")

	ErrEmailTaken = errors.New("email is already registered")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns (nil, nil) when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when no user matches.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// TaskStore is the only way to reach task rows. Every read and write takes
// the owner's user id, so an unscoped query cannot be expressed.
type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error
	// GetTask returns (nil, nil) when the task does not exist or belongs to
	// a different user.
	GetTask(ctx context.Context, userID, taskID string) (*models.Task, error)
	// ListTasks returns the user's tasks ordered by creation time,
	// newest first.
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	// UpdateTask persists name and description changes for an owned task.
	// Returns ErrTaskNotFound when no owned row matched.
	UpdateTask(ctx context.Context, task *models.Task) error
	// DeleteTask removes an owned task. Returns ErrTaskNotFound when no
	// owned row matched.
	DeleteTask(ctx context.Context, userID, taskID string) error
}
