package infrastructure

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenCache maps a session token to the id of the user that owns it.
// Entries must be removed when the token leaves the user's stored token
// list, so a cache hit carries the same authority as the list itself.
type TokenCache interface {
	SetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	GetToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, token string) error
}

// RedisService is the redis-backed TokenCache. It lets the auth middleware
// skip a database round trip on the hot path; the database token list stays
// authoritative.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(redisURL string) (*RedisService, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisService{client: client}, nil
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, "token:"+token, userID, ttl).Err()
}

// GetToken returns the cached owner of a token, or "" on a cache miss.
func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	val, err := r.client.Get(ctx, "token:"+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisService) DeleteToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, "token:"+token).Err()
}
