package factory

import (
	"github.com/spamlens/spamlens/internal/adapters/auth"
	"github.com/spamlens/spamlens/internal/adapters/httpapi"
	"github.com/spamlens/spamlens/internal/config"
	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// ClientFactory creates the client-side collaborators: the gateway, the auth
// service, and the three controllers over them
type ClientFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewClientFactory creates a new client factory
func NewClientFactory(cfg *config.Config, logger *zap.Logger) *ClientFactory {
	return &ClientFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateGateway creates the remote service gateway
func (f *ClientFactory) CreateGateway() core.Gateway {
	gatewayConfig := f.cfg.GetGateway()
	return httpapi.NewClient(gatewayConfig.BaseURL, gatewayConfig.Timeout, f.logger)
}

// CreateAuthService creates the auth service based on the configuration.
// Only the simulated provider ships today; the port keeps it swappable.
func (f *ClientFactory) CreateAuthService() core.AuthService {
	authConfig := f.cfg.GetAuth()
	return auth.NewSimulatedService(authConfig.SimulatedDelay, f.logger)
}

// CreateSessionController creates the session controller over the given store
func (f *ClientFactory) CreateSessionController(store core.SessionStore) *core.SessionController {
	return core.NewSessionController(store, f.CreateAuthService(), f.logger)
}

// CreateClassifierController creates the classification controller
func (f *ClientFactory) CreateClassifierController(gateway core.Gateway) *core.ClassifierController {
	return core.NewClassifierController(gateway, f.cfg.GetClassifier().Timeout, f.logger)
}

// CreateChatController creates the chat controller
func (f *ClientFactory) CreateChatController(gateway core.Gateway) *core.ChatController {
	return core.NewChatController(gateway, f.cfg.GetGateway().Timeout, f.logger)
}
