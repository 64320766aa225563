// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package redis builds the client backing the blob cleanup retry queue.
//
// Object keys whose deletion failed mid-request are parked in a Redis list
// until the sweeper retries them. Enqueueing must never slow down the
// user-visible write, hence the short operation timeouts, and entries
// survive process restarts so a crash does not orphan blobs.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 3 * time.Second
	opTimeout    = 2 * time.Second
	pingTimeout  = 2 * time.Second
	poolSize     = 10
	minIdleConns = 2
	maxIdleConns = 5
)

// NewClient parses a redis:// URL, applies the queue-workload tuning, and
// verifies connectivity before returning. Like the database pool, a dead
// Redis fails startup rather than the first failed-delete enqueue.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	opts.PoolSize = poolSize
	opts.MinIdleConns = minIdleConns
	opts.MaxIdleConns = maxIdleConns
	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = opTimeout
	opts.WriteTimeout = opTimeout

	client := redis.NewClient(opts)

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", opts.Addr),
		slog.Int("pool_size", opts.PoolSize),
	)

	return client, nil
}

// Ping reports whether the client can reach Redis within pingTimeout.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
