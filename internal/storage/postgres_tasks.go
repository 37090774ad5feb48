package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ymurata/taskleaf/internal/models"
)

type PostgresTaskStore struct {
	db *pgxpool.Pool
}

func NewPostgresTaskStore(db *pgxpool.Pool) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

func (s *PostgresTaskStore) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
		INSERT INTO tasks (id, name, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		task.ID,
		task.Name,
		task.Description,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (s *PostgresTaskStore) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	// URL path ids come straight from the client; a malformed id is just a
	// miss, not a query error.
	if uuid.Validate(taskID) != nil {
		return nil, nil
	}

	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task models.Task
	err := s.db.QueryRow(ctx, query, taskID, userID).Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

func (s *PostgresTaskStore) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID,
			&task.Name,
			&task.Description,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (s *PostgresTaskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`

	tag, err := s.db.Exec(ctx, query,
		task.Name,
		task.Description,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (s *PostgresTaskStore) DeleteTask(ctx context.Context, userID, taskID string) error {
	if uuid.Validate(taskID) != nil {
		return ErrTaskNotFound
	}

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := s.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}
