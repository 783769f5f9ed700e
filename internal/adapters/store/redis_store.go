package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
)

// redisKeyPrefix namespaces the session keys in a shared instance
const redisKeyPrefix = "spamlens:session:"

// RedisStore is a Redis implementation of the SessionStore interface
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a new Redis session store from a redis:// URL
func NewRedisStore(url string, logger *zap.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		logger: logger,
	}, nil
}

// Load reads the persisted session; missing keys yield the zero session
func (s *RedisStore) Load(ctx context.Context) (core.Session, error) {
	values, err := s.client.MGet(ctx,
		redisKeyPrefix+keyAuthenticated,
		redisKeyPrefix+keyUserEmail,
		redisKeyPrefix+keyUserName,
	).Result()
	if err != nil {
		return core.Session{}, fmt.Errorf("failed to read session keys: %w", err)
	}

	asString := func(v interface{}) string {
		if str, ok := v.(string); ok {
			return str
		}
		return ""
	}

	return core.Session{
		Authenticated: asString(values[0]) == "true",
		Email:         asString(values[1]),
		Name:          asString(values[2]),
	}, nil
}

// Save persists the session
func (s *RedisStore) Save(ctx context.Context, session core.Session) error {
	authenticated := ""
	if session.Authenticated {
		authenticated = "true"
	}

	err := s.client.MSet(ctx,
		redisKeyPrefix+keyAuthenticated, authenticated,
		redisKeyPrefix+keyUserEmail, session.Email,
		redisKeyPrefix+keyUserName, session.Name,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to write session keys: %w", err)
	}

	s.logger.Debug("Session persisted", zap.String("email", session.Email))
	return nil
}

// Clear removes all persisted session fields
func (s *RedisStore) Clear(ctx context.Context) error {
	err := s.client.Del(ctx,
		redisKeyPrefix+keyAuthenticated,
		redisKeyPrefix+keyUserEmail,
		redisKeyPrefix+keyUserName,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
