package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayvia/stayvia-server/internal/adapters/database/redis/cache"
)

type Client struct {
	Queries *cache.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
	QueryTTL time.Duration
}

func New(opts Options) (*Client, error) {
	queryStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := queryStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping query storage: %w", err)
	}

	return &Client{
		Queries: cache.NewStorage(queryStorage, opts.QueryTTL),
	}, nil
}
