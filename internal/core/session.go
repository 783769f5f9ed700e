package core

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SessionController owns the authentication state. It is the only component
// allowed to write to the session store.
type SessionController struct {
	store  SessionStore
	auth   AuthService
	logger *zap.Logger

	mu      sync.RWMutex
	session Session
}

// NewSessionController creates a new session controller
func NewSessionController(store SessionStore, auth AuthService, logger *zap.Logger) *SessionController {
	return &SessionController{
		store:  store,
		auth:   auth,
		logger: logger,
	}
}

// Restore hydrates the in-memory session from the store at startup. It never
// fails: a broken or empty store yields the anonymous session.
func (c *SessionController) Restore(ctx context.Context) Session {
	session, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("Failed to load persisted session, starting anonymous", zap.Error(err))
		session = Session{}
	}

	// Leftover identity keys from an older write must never display for an
	// unauthenticated user.
	if !session.Authenticated {
		session = Session{}
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.logger.Debug("Session restored", zap.Bool("authenticated", session.Authenticated))
	return session
}

// SignIn validates and verifies credentials, then persists the session.
// Blank fields are rejected before the auth service is consulted.
func (c *SessionController) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	session, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		c.logger.Warn("Sign-in failed", zap.String("email", email), zap.Error(err))
		return err
	}

	return c.commit(ctx, session)
}

// SignUp registers a new identity. The confirmation mismatch is rejected
// before any network or simulated call.
func (c *SessionController) SignUp(ctx context.Context, name, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrEmptyCredentials
	}

	session, err := c.auth.SignUp(ctx, name, email, password)
	if err != nil {
		c.logger.Warn("Sign-up failed", zap.String("email", email), zap.Error(err))
		return err
	}

	return c.commit(ctx, session)
}

// SignOut clears the session in the store and in memory. It always succeeds
// from the caller's view; a store failure is logged and the in-memory state
// is cleared regardless.
func (c *SessionController) SignOut(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error("Failed to clear persisted session", zap.Error(err))
	}

	c.mu.Lock()
	c.session = Session{}
	c.mu.Unlock()

	c.logger.Info("Signed out")
}

// Current returns the in-memory session
func (c *SessionController) Current() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *SessionController) commit(ctx context.Context, session Session) error {
	if err := c.store.Save(ctx, session); err != nil {
		c.logger.Error("Failed to persist session", zap.Error(err))
		return err
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.logger.Info("Session established", zap.String("email", session.Email))
	return nil
}
