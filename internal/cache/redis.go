package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient caches responses of the auxiliary analysis calls (model
// catalog, nutrition tips). Food analysis itself is never cached. The cache
// is optional: when redis is absent every method degrades to a miss.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient connects using REDIS_URL. Returns an error when the URL is
// unset or redis is unreachable; callers treat that as "run without cache".
func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ctx: ctx}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreModelCatalog caches the filtered model list for the given provider
// base URL.
func (r *RedisClient) StoreModelCatalog(baseURL string, models []string, duration time.Duration) error {
	jsonData, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	key := fmt.Sprintf("models:%s", baseURL)
	return r.client.Set(r.ctx, key, jsonData, duration).Err()
}

// GetModelCatalog returns the cached list, or found=false on a miss.
func (r *RedisClient) GetModelCatalog(baseURL string) ([]string, bool, error) {
	key := fmt.Sprintf("models:%s", baseURL)
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get catalog from Redis: %w", err)
	}

	var models []string
	if err := json.Unmarshal([]byte(data), &models); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return models, true, nil
}

// StoreTip caches the daily nutrition tip.
func (r *RedisClient) StoreTip(tip string, duration time.Duration) error {
	return r.client.Set(r.ctx, "nutrition:tip", tip, duration).Err()
}

// GetTip returns the cached tip, or found=false on a miss.
func (r *RedisClient) GetTip() (string, bool, error) {
	tip, err := r.client.Get(r.ctx, "nutrition:tip").Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get tip from Redis: %w", err)
	}
	return tip, true, nil
}
