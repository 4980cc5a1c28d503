package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	writeTimeout = 2 * time.Second
	scanCount    = 100
)

var ErrCacheMiss = errors.New("cache miss")

//go:generate mockery --name=Client --dir=. --output=../../../mocks --filename=cache_client_mock.go --structname=CacheClient --case=underscore --with-expecter
type Client interface {
	// Get returns ErrCacheMiss when the key does not exist or has expired.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}

type client struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

// NewClient does not dial; connectivity is checked with Ping so callers can
// decide whether an unreachable Redis is fatal.
func NewClient(config Config, logger *logrus.Logger) Client {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	return NewClientFromRedis(redis.NewClient(options), logger)
}

func NewClientFromRedis(redisClient *redis.Client, logger *logrus.Logger) Client {
	return &client{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return value, nil
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.redisClient.Set(ctx, key, value, expiration).Err()
}

func (c *client) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, nextCursor, err := c.redisClient.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return deleted, fmt.Errorf("error scanning keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.redisClient.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("error deleting keys: %w", err)
			}
			deleted += n
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	c.logger.WithFields(logrus.Fields{
		"pattern": pattern,
		"deleted": deleted,
	}).Info("cache entries deleted")
	return deleted, nil
}

func (c *client) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
