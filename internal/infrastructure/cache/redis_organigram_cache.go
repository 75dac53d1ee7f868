package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	organigramKey        = "organigram:tree"
	defaultOrganigramTTL = time.Hour
)

// RedisOrganigramCache caches the serialized organigram tree in Redis.
// The tree is invalidated on every unit or assignment mutation, so the
// TTL is only a safety net against missed invalidations.
type RedisOrganigramCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient opens a Redis connection from configuration
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRedisOrganigramCache creates a cache backed by an existing client
func NewRedisOrganigramCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisOrganigramCache {
	if ttl <= 0 {
		ttl = defaultOrganigramTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisOrganigramCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached tree. A missing key is a miss, not an error.
func (c *RedisOrganigramCache) Get(ctx context.Context) ([]*organization.OrganigramNode, bool, error) {
	payload, err := c.client.Get(ctx, organigramKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read organigram cache: %w", err)
	}

	var tree []*organization.OrganigramNode
	if err := json.Unmarshal(payload, &tree); err != nil {
		// A corrupt entry is dropped and treated as a miss so the next
		// read rebuilds it from the database.
		c.logger.Warn("Dropping corrupt organigram cache entry", zap.Error(err))
		_ = c.client.Del(ctx, organigramKey).Err()
		return nil, false, nil
	}

	return tree, true, nil
}

// Set stores the tree with the configured TTL
func (c *RedisOrganigramCache) Set(ctx context.Context, tree []*organization.OrganigramNode) error {
	payload, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to serialize organigram tree: %w", err)
	}

	if err := c.client.Set(ctx, organigramKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write organigram cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached tree
func (c *RedisOrganigramCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, organigramKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate organigram cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisOrganigramCache) Close() error {
	return c.client.Close()
}

var _ orgapp.OrganigramCache = (*RedisOrganigramCache)(nil)
