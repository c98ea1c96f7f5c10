package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/redis/go-redis/v9"
)

type Service interface {
	// Generic cache operations
	Get(ctx context.Context, key string, dest interface{}) error

	// Update loads key into dest (zero value on miss), applies fn and writes the
	// result back inside an optimistic WATCH/MULTI transaction
	Update(ctx context.Context, key string, ttl time.Duration, dest interface{}, fn func(found bool) error) error

	// Health check
	Ping(ctx context.Context) error
}

type service struct {
	client     *redis.Client
	maxRetries int
}

func NewService(client *redis.Client) Service {
	return &service{client: client, maxRetries: 10}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

func (s *service) Update(ctx context.Context, key string, ttl time.Duration, dest interface{}, fn func(found bool) error) error {
	txf := func(tx *redis.Tx) error {
		// Reset dest so a retry never merges into the previous attempt's value
		if v := reflect.ValueOf(dest); v.Kind() == reflect.Ptr && !v.IsNil() {
			v.Elem().Set(reflect.Zero(v.Elem().Type()))
		}

		found := true
		val, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			found = false
		case err != nil:
			return fmt.Errorf("cache get error: %w", err)
		default:
			if err := json.Unmarshal(val, dest); err != nil {
				return fmt.Errorf("cache unmarshal error: %w", err)
			}
		}

		if err := fn(found); err != nil {
			return err
		}

		data, err := json.Marshal(dest)
		if err != nil {
			return fmt.Errorf("cache marshal error: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}

	for i := 0; i < s.maxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Optimistic lock lost, retry
			continue
		}
		return err
	}

	return ErrUpdateConflict
}

func (s *service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Error definitions
var (
	ErrCacheMiss      = errors.New("cache miss")
	ErrUpdateConflict = errors.New("cache update conflict: too many concurrent writers")
)
