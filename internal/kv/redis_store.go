package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "storefront:"

// RedisBackend stores each installation's keys as plain Redis strings.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend creates a Redis-backed store. Closing it closes client.
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisBackend{
		client: client,
		prefix: prefix,
	}
}

func (b *RedisBackend) Open(installID string) Store {
	return &redisStore{backend: b, installID: installID}
}

func (b *RedisBackend) Close(context.Context) error {
	return b.client.Close()
}

type redisStore struct {
	backend   *RedisBackend
	installID string
}

func (s *redisStore) key(k string) string {
	return s.backend.prefix + s.installID + ":" + k
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.backend.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv: redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	// no expiry: a token stays until logout
	return s.backend.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.backend.client.Del(ctx, s.key(key)).Err()
}

func (s *redisStore) Apply(ctx context.Context, m Mutation) error {
	if err := m.validate(); err != nil {
		return err
	}
	if m.Empty() {
		return nil
	}

	_, err := s.backend.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range m.Set {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		if len(m.Remove) > 0 {
			keys := make([]string, 0, len(m.Remove))
			for _, k := range m.Remove {
				keys = append(keys, s.key(k))
			}
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kv: redis apply: %w", err)
	}
	return nil
}
