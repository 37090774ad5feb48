package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.New().String()
	s.sessions[token] = memoryEntry{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.sessions[token]
	if !exists || s.now().After(entry.expiresAt) {
		return "", nil
	}

	return entry.userID, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
