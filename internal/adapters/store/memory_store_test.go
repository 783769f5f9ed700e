package store

import (
	"context"
	"testing"

	"github.com/spamlens/spamlens/internal/core"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty store failed: %v", err)
	}
	if session != (core.Session{}) {
		t.Errorf("empty store must yield the zero session, got %+v", session)
	}

	want := core.Session{Authenticated: true, Email: "alice@example.com", Name: "Alice"}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, core.Session{Authenticated: true, Email: "a@b.c", Name: "A"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if session != (core.Session{}) {
		t.Errorf("cleared store must yield the zero session, got %+v", session)
	}
}

func TestMemoryStoreUnauthenticatedSaveDropsFlag(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, core.Session{Authenticated: false, Email: "left@over.com"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if session.Authenticated {
		t.Error("authenticated flag must not persist for an unauthenticated session")
	}
}
