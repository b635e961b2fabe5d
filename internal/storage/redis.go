package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cart-service/internal/models"
	"cart-service/internal/util"

	"github.com/go-redis/redis/v8"
)

const cartKey = "cart:state"

// RedisStorage persists the cart snapshot as a JSON value in Redis.
type RedisStorage struct {
	rdb *redis.Client
}

// NewRedisStorage creates a Redis-backed cart storage. The connection
// is verified with a short ping; a failed ping is returned as an error
// so the caller can decide whether to degrade or abort.
func NewRedisStorage(addr, password string, db int) (*RedisStorage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return &RedisStorage{rdb: rdb}, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStorage{rdb: rdb}, nil
}

// Close closes the Redis connection
func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}

// GetCart reads the persisted cart snapshot. A missing key, a payload
// that is not a JSON object of positive integers, or any decode failure
// all read as "no snapshot" without an error; only transport failures
// are returned as errors.
func (s *RedisStorage) GetCart(ctx context.Context) (models.CartState, bool, error) {
	ctx, span := util.StartSpan(ctx, "RedisStorage.GetCart")
	defer span.End()

	data, err := s.rdb.Get(ctx, cartKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var cart models.CartState
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, false, nil
	}
	if !validSnapshot(cart) {
		return nil, false, nil
	}

	return cart, true, nil
}

// SetCart overwrites the persisted cart snapshot.
func (s *RedisStorage) SetCart(ctx context.Context, cart models.CartState) error {
	ctx, span := util.StartSpan(ctx, "RedisStorage.SetCart")
	defer span.End()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.rdb.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
