// Package cache is the query-result cache behind the services. Results are
// keyed by (query name, parameters) and mutations drop whole query names, so
// a write never leaves a stale variant of the same query behind.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "query:"

type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: client,
		ttl:   ttl,
	}
}

func key(name string, params []string) string {
	if len(params) == 0 {
		return keyPrefix + name
	}
	return keyPrefix + name + ":" + strings.Join(params, ",")
}

// Get unmarshals a cached query result into dest. The second return reports
// whether the key was present.
func (s *Storage) Get(ctx context.Context, dest interface{}, name string, params ...string) (bool, error) {
	raw, err := s.redis.Get(ctx, key(name, params)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a query result under its (name, params) key with the storage TTL.
func (s *Storage) Set(ctx context.Context, value interface{}, name string, params ...string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key(name, params), raw, s.ttl).Err()
}

// Invalidate drops every cached result of the named query, regardless of
// parameters.
func (s *Storage) Invalidate(ctx context.Context, name string) error {
	pattern := keyPrefix + name + "*"

	iter := s.redis.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
