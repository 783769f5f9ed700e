package factory

import (
	"fmt"

	"github.com/spamlens/spamlens/internal/adapters/store"
	"github.com/spamlens/spamlens/internal/config"
	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// StoreFactory creates session stores
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSessionStore creates a session store based on the configuration
func (f *StoreFactory) CreateSessionStore() (core.SessionStore, error) {
	storeConfig := f.cfg.GetStore()

	switch storeConfig.Type {
	case "memory":
		f.logger.Info("Using in-memory session store")
		return store.NewMemoryStore(), nil
	case "sqlite":
		f.logger.Info("Using SQLite session store", zap.String("path", storeConfig.SQLitePath))
		return store.NewSQLiteStore(storeConfig.SQLitePath, f.logger)
	case "mysql":
		f.logger.Info("Using MySQL session store")
		return store.NewMySQLStore(storeConfig.MySQLDSN, f.logger)
	case "redis":
		f.logger.Info("Using Redis session store")
		return store.NewRedisStore(storeConfig.RedisURL, f.logger)
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", storeConfig.Type)
	}
}
