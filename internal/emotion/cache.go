package emotion

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache abstracts the redis operations used by the pipeline to make testing
// easier.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

// RedisCache is a concrete implementation backed by go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constructs a new redis-backed cache adapter.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set writes a value to redis.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a cached value from redis.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// cachedDetection is the JSON payload stored under detectionKey(requestID).
type cachedDetection struct {
	RequestID  string    `json:"request_id"`
	Filename   string    `json:"filename"`
	Emotion    string    `json:"emotion"`
	Confidence float32   `json:"confidence"`
	Hash       string    `json:"sha1_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

func detectionKey(requestID string) string {
	return "detection:" + requestID
}
