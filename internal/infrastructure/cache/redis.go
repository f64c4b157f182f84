package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-backend/pkg/cache"
)

// RedisCache implements cache.Cache on top of go-redis
type RedisCache struct {
	Client *redis.Client
}

var _ cache.Cache = (*RedisCache)(nil)

func NewRedisCache(host, password string, db int) *RedisCache {
	return &RedisCache{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisCache) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	// Ping to verify connection
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

// Get đọc JSON từ key và unmarshal vào dest
func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return true, nil
}

// Set serialize value sang JSON (string và []byte được ghi nguyên)
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	var payload []byte
	switch v := value.(type) {
	case string:
		payload = []byte(v)
	case []byte:
		payload = v
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("redis encode %s: %w", key, err)
		}
		payload = data
	}

	if err := r.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *RedisCache) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
