package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := NewSQLiteStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load on fresh store failed: %v", err)
	}
	if session != (core.Session{}) {
		t.Errorf("fresh store must yield the zero session, got %+v", session)
	}

	want := core.Session{Authenticated: true, Email: "alice@example.com", Name: "Alice"}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Reopen to prove the session survives a restart
	s.Close()
	reopened, err := NewSQLiteStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip across restart: got %+v, want %+v", got, want)
	}

	if err := reopened.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err = reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after clear failed: %v", err)
	}
	if got != (core.Session{}) {
		t.Errorf("cleared store must yield the zero session, got %+v", got)
	}
}
