package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client that backs the barcode cache and the worker
// queues. A failed ping aborts startup; the alert and email workers cannot
// run without it.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
