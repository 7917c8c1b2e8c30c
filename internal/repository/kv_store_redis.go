package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) KVStore {
	return &redisKVStore{client: client}
}

func (s *redisKVStore) Set(ctx context.Context, key, value string) error {
	// 0 TTL: entries live as long as the server does, matching the
	// no-expiry contract of the memory backend
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
