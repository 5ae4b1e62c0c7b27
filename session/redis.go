// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/ten-rounds/models"
)

const keyPrefix = "tenrounds:session:"

// RedisStore keeps each session as a JSON blob under a TTL'd key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, sid string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sid, data, TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
