package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"realtyhub/models"
)

const redisTimeout = 3 * time.Second

// RedisSessionStore keeps the session slots as plain Redis keys under a
// prefix, so several clients can each own their own slot set.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore builds a Redis-backed session store.
func NewRedisSessionStore(addr, password, prefix string) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: prefix,
	}
}

// Ping checks connectivity.
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionStore) key(slot string) string {
	return r.prefix + slot
}

func (r *RedisSessionStore) Load() (models.Session, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	keys := make([]string, len(sessionSlots))
	for i, slot := range sessionSlots {
		keys[i] = r.key(slot)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return models.Session{}, false, fmt.Errorf("session redis: load: %w", err)
	}

	slots := make(map[string]string, len(vals))
	for i, v := range vals {
		if str, ok := v.(string); ok {
			slots[sessionSlots[i]] = str
		}
	}
	s, ok := sessionFromSlots(slots)
	return s, ok, nil
}

func (r *RedisSessionStore) Save(s models.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	slots := slotsFromSession(s)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, slot := range sessionSlots {
			if v, ok := slots[slot]; ok {
				pipe.Set(ctx, r.key(slot), v, 0)
			} else {
				pipe.Del(ctx, r.key(slot))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session redis: save: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	keys := make([]string, len(sessionSlots))
	for i, slot := range sessionSlots {
		keys[i] = r.key(slot)
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("session redis: clear: %w", err)
	}
	return nil
}

// Close releases the client connection pool.
func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}
