package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/spamlens/spamlens/internal/config"
	"github.com/spamlens/spamlens/internal/factory"
	"github.com/spamlens/spamlens/internal/logging"
	"github.com/spamlens/spamlens/internal/server"
	"github.com/spamlens/spamlens/internal/utils"
)

// BuildServerContainer creates and configures the dependency injection
// container for the classification server daemon
func BuildServerContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewAssistantFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register assistant (nil when the rules provider is configured)
	if err := container.Provide(func(f *factory.AssistantFactory) (server.Assistant, error) {
		return f.CreateAssistant()
	}); err != nil {
		return nil, err
	}

	// Register classification engine
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *server.Engine {
		serverConfig := cfg.GetServer()
		return server.NewEngine(serverConfig.SpamThreshold, serverConfig.TrustedDomains, logger)
	}); err != nil {
		return nil, err
	}

	// Register responder and handler
	if err := container.Provide(server.NewResponder); err != nil {
		return nil, err
	}
	if err := container.Provide(server.NewHandler); err != nil {
		return nil, err
	}

	// Register the HTTP server
	if err := container.Provide(func(cfg *config.Config, handler *server.Handler, logger *zap.Logger) *server.Server {
		return server.NewServer(cfg.GetServer().ListenAddress, handler, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
