package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pressroom/pressroom/internal/domain"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/logger"
)

const feedKeyPrefix = "feed:published:"

// RedisFeedCache caches the public published feed in Redis, keyed by
// category filter. It is strictly best-effort: every failure path falls
// through to the database and is logged at debug level only.
type RedisFeedCache struct {
	client *redis.Client
	log    logger.Logger
}

// NewRedisFeedCache connects to Redis and returns a feed cache, or an
// error if the backend is unreachable.
func NewRedisFeedCache(redisURL string, log logger.Logger) (*RedisFeedCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisFeedCache{client: client, log: log}, nil
}

var _ ports.FeedCache = (*RedisFeedCache)(nil)

// Get returns the cached feed for the category filter, if warm.
func (c *RedisFeedCache) Get(ctx context.Context, category string) ([]*domain.Article, bool) {
	payload, err := c.client.Get(ctx, feedKey(category)).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Debug(ctx, "feed cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var articles []*domain.Article
	if err := json.Unmarshal(payload, &articles); err != nil {
		return nil, false
	}

	return articles, true
}

// Set stores the feed for the category filter with a TTL.
func (c *RedisFeedCache) Set(ctx context.Context, category string, articles []*domain.Article, ttl time.Duration) {
	payload, err := json.Marshal(articles)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, feedKey(category), payload, ttl).Err(); err != nil && c.log != nil {
		c.log.Debug(ctx, "feed cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Invalidate drops every cached feed variant. Called whenever an article
// enters or leaves the Published state.
func (c *RedisFeedCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, feedKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil && c.log != nil {
			c.log.Debug(ctx, "feed cache invalidation failed", map[string]interface{}{
				"key":   iter.Val(),
				"error": err.Error(),
			})
		}
	}
}

// Close releases the Redis connection.
func (c *RedisFeedCache) Close() error {
	return c.client.Close()
}

func feedKey(category string) string {
	if category == "" {
		return feedKeyPrefix + "all"
	}
	return feedKeyPrefix + "category:" + category
}
