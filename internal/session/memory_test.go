package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_CreateResolve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected 'user-1', got '%s'", userID)
	}
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	userID, err := store.Resolve(ctx, "no-such-token")
	if err != nil {
		t.Fatalf("unknown token must not be an error, got: %v", err)
	}
	if userID != "" {
		t.Errorf("expected empty user id, got '%s'", userID)
	}
}

func TestMemoryStore_Destroy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "" {
		t.Error("expected destroyed token to no longer resolve")
	}

	// destroying again is a no-op
	if err := store.Destroy(ctx, token); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current = current.Add(2 * time.Hour)

	userID, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "" {
		t.Error("expected expired token to no longer resolve")
	}
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %s", token)
		}
		seen[token] = true
	}
}
