package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisSlot keeps each user's cart as a JSON blob under one key, so a
// write replaces the whole slot. Carts expire after 30 days idle.
type RedisSlot struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSlot(rdb *redis.Client) *RedisSlot {
	return &RedisSlot{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

func cartKey(userID string) string { return "cart:" + userID }

func (s *RedisSlot) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisSlot) Load(ctx context.Context, userID string) ([]LineItem, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := s.rdb.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cart slot: %w", err)
	}
	return items, true, nil
}

func (s *RedisSlot) Save(ctx context.Context, userID string, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart slot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.rdb.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func (s *RedisSlot) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
