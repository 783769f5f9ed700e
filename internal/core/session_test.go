package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type fakeStore struct {
	mu      sync.Mutex
	session Session
	present bool
	saves   int
	clears  int
}

func (s *fakeStore) Load(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return Session{}, nil
	}
	return s.session, nil
}

func (s *fakeStore) Save(ctx context.Context, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.present = true
	s.saves++
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	s.present = false
	s.clears++
	return nil
}

type fakeAuth struct {
	signIns int
	signUps int
	err     error
}

func (a *fakeAuth) SignIn(ctx context.Context, email, password string) (Session, error) {
	a.signIns++
	if a.err != nil {
		return Session{}, a.err
	}
	return Session{Authenticated: true, Email: email}, nil
}

func (a *fakeAuth) SignUp(ctx context.Context, name, email, password string) (Session, error) {
	a.signUps++
	if a.err != nil {
		return Session{}, a.err
	}
	return Session{Authenticated: true, Email: email, Name: name}, nil
}

func TestSignInRejectsBlankFields(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"both blank", "", ""},
		{"blank email", "", "secret"},
		{"blank password", "alice@example.com", ""},
		{"whitespace email", "   ", "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			auth := &fakeAuth{}
			c := NewSessionController(store, auth, zap.NewNop())

			err := c.SignIn(context.Background(), tc.email, tc.password)
			if !errors.Is(err, ErrEmptyCredentials) {
				t.Fatalf("got %v, want ErrEmptyCredentials", err)
			}
			if auth.signIns != 0 {
				t.Error("auth service must not be consulted for blank fields")
			}
			if store.saves != 0 {
				t.Error("store must not be written for rejected sign-in")
			}
		})
	}
}

func TestSignUpRejectsPasswordMismatch(t *testing.T) {
	store := &fakeStore{}
	auth := &fakeAuth{}
	c := NewSessionController(store, auth, zap.NewNop())

	err := c.SignUp(context.Background(), "Alice", "alice@example.com", "a", "b")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("got %v, want ErrPasswordMismatch", err)
	}
	if auth.signUps != 0 {
		t.Error("mismatch must be rejected before the auth service is consulted")
	}
	if store.saves != 0 {
		t.Error("mismatch must not mutate the store")
	}
}

func TestSignInRoundTrip(t *testing.T) {
	store := &fakeStore{}
	c := NewSessionController(store, &fakeAuth{}, zap.NewNop())

	if err := c.SignIn(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	// Simulate a reload: a fresh controller over the same store
	restored := NewSessionController(store, &fakeAuth{}, zap.NewNop())
	session := restored.Restore(context.Background())

	if !session.Authenticated {
		t.Error("restored session must be authenticated")
	}
	if session.Email != "alice@example.com" {
		t.Errorf("restored email: got %q, want %q", session.Email, "alice@example.com")
	}
}

func TestSignUpPersistsName(t *testing.T) {
	store := &fakeStore{}
	c := NewSessionController(store, &fakeAuth{}, zap.NewNop())

	if err := c.SignUp(context.Background(), "Alice", "alice@example.com", "secret", "secret"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	session := c.Current()
	if session.Name != "Alice" {
		t.Errorf("name: got %q, want %q", session.Name, "Alice")
	}
}

func TestSignOutClearsEverything(t *testing.T) {
	store := &fakeStore{}
	c := NewSessionController(store, &fakeAuth{}, zap.NewNop())

	if err := c.SignIn(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	c.SignOut(context.Background())

	if got := c.Current(); got != (Session{}) {
		t.Errorf("in-memory session after sign-out: got %+v, want zero", got)
	}

	session := NewSessionController(store, &fakeAuth{}, zap.NewNop()).Restore(context.Background())
	if session != (Session{}) {
		t.Errorf("restored session after sign-out: got %+v, want zero", session)
	}
}

func TestRestoreDropsStaleIdentity(t *testing.T) {
	// Identity keys left behind without the authenticated flag must not display
	store := &fakeStore{session: Session{Authenticated: false, Email: "old@example.com", Name: "Old"}, present: true}
	c := NewSessionController(store, &fakeAuth{}, zap.NewNop())

	session := c.Restore(context.Background())
	if session != (Session{}) {
		t.Errorf("restore of stale identity: got %+v, want zero", session)
	}
}

func TestSignInSurfacesAuthFailure(t *testing.T) {
	store := &fakeStore{}
	auth := &fakeAuth{err: errors.New("invalid credentials")}
	c := NewSessionController(store, auth, zap.NewNop())

	if err := c.SignIn(context.Background(), "alice@example.com", "wrong"); err == nil {
		t.Fatal("expected an error")
	}
	if store.saves != 0 {
		t.Error("failed sign-in must not mutate the store")
	}
}
