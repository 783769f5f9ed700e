package auth

import (
	"context"
	"strings"
	"time"

	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// SimulatedService is an AuthService that accepts any well-formed credentials
// after a fixed delay. It stands in for a real identity backend behind the
// same contract; swapping it out requires no controller changes.
type SimulatedService struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedService creates a new simulated auth service
func NewSimulatedService(delay time.Duration, logger *zap.Logger) *SimulatedService {
	return &SimulatedService{
		delay:  delay,
		logger: logger,
	}
}

// SignIn verifies credentials and returns the resulting session
func (s *SimulatedService) SignIn(ctx context.Context, email, password string) (core.Session, error) {
	if err := s.wait(ctx); err != nil {
		return core.Session{}, err
	}

	s.logger.Debug("Simulated sign-in accepted", zap.String("email", email))
	return core.Session{
		Authenticated: true,
		Email:         strings.TrimSpace(email),
	}, nil
}

// SignUp registers a new identity and returns the resulting session
func (s *SimulatedService) SignUp(ctx context.Context, name, email, password string) (core.Session, error) {
	if err := s.wait(ctx); err != nil {
		return core.Session{}, err
	}

	s.logger.Debug("Simulated sign-up accepted", zap.String("email", email))
	return core.Session{
		Authenticated: true,
		Email:         strings.TrimSpace(email),
		Name:          strings.TrimSpace(name),
	}, nil
}

func (s *SimulatedService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
