package dashboard

import (
	"context"
	"errors"
	"time"

	"queuesmart/internal/shared/constants"
	"queuesmart/pkg/cache"
)

// RedisStore keeps sessions in Redis so several instances can share them.
// Updates use optimistic WATCH/MULTI transactions through cache.Service.
type RedisStore struct {
	cache cache.Service
	ttl   time.Duration
}

func NewRedisStore(cacheService cache.Service, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = constants.TTL_DASHBOARD_SESSION
	}
	return &RedisStore{cache: cacheService, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	var state State
	if err := r.cache.Get(ctx, constants.DashboardSessionKey(sessionID), &state); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &state, nil
}

func (r *RedisStore) Update(ctx context.Context, sessionID string, fn func(*State) error) (*State, error) {
	var state State
	err := r.cache.Update(ctx, constants.DashboardSessionKey(sessionID), r.ttl, &state, func(found bool) error {
		if !found {
			state = *NewState()
		}
		if err := fn(&state); err != nil {
			return err
		}
		state.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state.clone(), nil
}
