// Package cache provides a Redis backed fiber.Storage for the response cache.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of the go-redis client used by Storage.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Close() error
}

// Storage stores cache entries under a key prefix.
type Storage struct {
	client  redisClient
	prefix  string
	timeout time.Duration
}

// Options configures NewStorage.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewStorage connects to Redis and checks the connection.
func NewStorage(ctx context.Context, opts Options) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return newStorage(client, opts.Prefix), nil
}

func newStorage(client redisClient, prefix string) *Storage {
	if prefix == "" {
		prefix = "risestream:cache:"
	}
	return &Storage{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *Storage) background() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *Storage) GetWithContext(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Get(key string) ([]byte, error) {
	ctx, cancel := s.background()
	defer cancel()
	return s.GetWithContext(ctx, key)
}

func (s *Storage) SetWithContext(ctx context.Context, key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.client.Set(ctx, s.prefix+key, val, exp).Err()
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	ctx, cancel := s.background()
	defer cancel()
	return s.SetWithContext(ctx, key, val, exp)
}

func (s *Storage) DeleteWithContext(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *Storage) Delete(key string) error {
	ctx, cancel := s.background()
	defer cancel()
	return s.DeleteWithContext(ctx, key)
}

// ResetWithContext removes every key under the prefix.
func (s *Storage) ResetWithContext(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *Storage) Reset() error {
	ctx, cancel := s.background()
	defer cancel()
	return s.ResetWithContext(ctx)
}

func (s *Storage) Close() error {
	return s.client.Close()
}
