package caching

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachingService caches small metadata payloads. Blob bytes never go
// through here.
type CachingService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = redis.Nil

type RedisCachingService struct {
	client *redis.Client
}

func NewRedisCachingService(client *redis.Client) *RedisCachingService {
	return &RedisCachingService{client: client}
}

func (s *RedisCachingService) Get(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

func (s *RedisCachingService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisCachingService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// NullCachingService misses every read and drops every write. Used when no
// Redis host is configured and in tests.
type NullCachingService struct{}

func NewNullCachingService() *NullCachingService { return &NullCachingService{} }

func (*NullCachingService) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (*NullCachingService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (*NullCachingService) Delete(ctx context.Context, key string) error {
	return nil
}
