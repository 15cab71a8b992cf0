package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
	logger *zap.Logger
}

// NewGoRedisClient wraps an existing go-redis client.
func NewGoRedisClient(ctx context.Context, client *redis.Client, logger *zap.Logger) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		ctx:    ctx,
		logger: logger.Named("GoRedisClient"),
	}
}

// Set sets a key-value pair with no expiry.
func (r *GoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for key, returning ErrKeyNotFound on a miss.
func (r *GoRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

func (r *GoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *GoRedisClient) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	n, err := r.client.Del(r.ctx, keys...).Result()
	if err != nil {
		return err
	}
	r.logger.Debug("deleted keys", zap.Strings("keys", keys), zap.Int64("removed", n))
	return nil
}

func (r *GoRedisClient) Ping() error {
	if _, err := r.client.Ping(r.ctx).Result(); err != nil {
		return fmt.Errorf("could not connect to redis: %w", err)
	}
	r.logger.Info("connected to redis", zap.String("addr", r.client.Options().Addr))
	return nil
}
