package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ymurata/taskleaf/internal/models"
)

// MemoryUserStore is an in-memory UserStore used by tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*models.User),
	}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}

	return nil, nil
}

func (s *MemoryUserStore) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, nil
	}

	clone := *user
	return &clone, nil
}

func (s *MemoryUserStore) DeleteUser(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)
}

func (s *MemoryUserStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		clone := *user
		users = append(users, &clone)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

type taskEntry struct {
	task *models.Task
	seq  int
}

// MemoryTaskStore is an in-memory TaskStore used by tests.
type MemoryTaskStore struct {
	mu      sync.RWMutex
	tasks   map[string]*taskEntry
	nextSeq int
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks: make(map[string]*taskEntry),
	}
}

func (s *MemoryTaskStore) CreateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	clone := *task
	s.nextSeq++
	s.tasks[task.ID] = &taskEntry{task: &clone, seq: s.nextSeq}
	return nil
}

func (s *MemoryTaskStore) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.tasks[taskID]
	if !exists || entry.task.UserID != userID {
		return nil, nil
	}

	clone := *entry.task
	return &clone, nil
}

func (s *MemoryTaskStore) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*taskEntry, 0, len(s.tasks))
	for _, entry := range s.tasks {
		if entry.task.UserID == userID {
			entries = append(entries, entry)
		}
	}

	// newest first; the insertion sequence breaks creation-time ties
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].task.CreatedAt.Equal(entries[j].task.CreatedAt) {
			return entries[i].task.CreatedAt.After(entries[j].task.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	tasks := make([]*models.Task, len(entries))
	for i, entry := range entries {
		clone := *entry.task
		tasks[i] = &clone
	}

	return tasks, nil
}

func (s *MemoryTaskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.tasks[task.ID]
	if !exists || entry.task.UserID != task.UserID {
		return ErrTaskNotFound
	}

	task.UpdatedAt = time.Now()
	entry.task.Name = task.Name
	entry.task.Description = task.Description
	entry.task.UpdatedAt = task.UpdatedAt
	return nil
}

func (s *MemoryTaskStore) DeleteTask(ctx context.Context, userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.tasks[taskID]
	if !exists || entry.task.UserID != userID {
		return ErrTaskNotFound
	}

	delete(s.tasks, taskID)
	return nil
}
