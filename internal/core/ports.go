package core

import (
	"context"
)

// SessionStore defines the interface for persisting the session across restarts
type SessionStore interface {
	// Load reads the persisted session; missing keys yield the zero session
	Load(ctx context.Context) (Session, error)

	// Save persists the session
	Save(ctx context.Context, session Session) error

	// Clear removes all persisted session fields
	Clear(ctx context.Context) error
}

// Gateway defines the interface for the remote classification service
type Gateway interface {
	// Classify submits raw email text and returns the service's verdict
	Classify(ctx context.Context, text string) (*ClassificationResult, error)

	// Chat sends one message to the assistant and returns its reply
	Chat(ctx context.Context, message string) (string, error)
}

// AuthService defines the interface for verifying credentials. The shipped
// implementation simulates the check; a real backend slots in behind the
// same contract.
type AuthService interface {
	// SignIn verifies credentials and returns the resulting session
	SignIn(ctx context.Context, email, password string) (Session, error)

	// SignUp registers a new identity and returns the resulting session
	SignUp(ctx context.Context, name, email, password string) (Session, error)
}
