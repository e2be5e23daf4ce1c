package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// FeedCache holds live match feed responses in Redis for a short TTL so that
// many profile tasks refreshing the same candidates within one run do not
// re-fetch each fixture once per profile.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// FeedCacheConfig holds Redis cache configuration
type FeedCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // short, e.g. 2 * time.Minute; odds move fast
}

// NewFeedCache creates a new Redis-backed feed cache
func NewFeedCache(config FeedCacheConfig, logger zerolog.Logger) *FeedCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &FeedCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "feed_cache").Logger(),
	}
}

func matchKey(parentMatchID string) string {
	return fmt.Sprintf("feed:match:%s", parentMatchID)
}

// SetMatch caches the live markets for one fixture
func (c *FeedCache) SetMatch(ctx context.Context, details *models.MatchDetails) error {
	key := matchKey(details.ParentMatchID)

	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal match details: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached match details")

	return nil
}

// GetMatch retrieves cached markets for a fixture. A miss yields (nil, nil).
func (c *FeedCache) GetMatch(ctx context.Context, parentMatchID string) (*models.MatchDetails, error) {
	data, err := c.client.Get(ctx, matchKey(parentMatchID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var details models.MatchDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match details: %w", err)
	}

	return &details, nil
}

// Ping checks Redis connection
func (c *FeedCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *FeedCache) Close() error {
	return c.client.Close()
}
