package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"tastebite/internal/service"
)

// RedisStore is the key-value store the session state hydrates from and
// persists to. Each collection lives under one key as a JSON blob.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client, Prefix: "tastebite:"}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrNoSavedState
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.Client.Set(ctx, s.Prefix+key, data, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.Prefix+key).Err()
}

var _ service.StateStore = (*RedisStore)(nil)
